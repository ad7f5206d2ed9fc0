package stylist_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"core-d-backend/internal/fashion"
	"core-d-backend/internal/jsonx"
	"core-d-backend/internal/models"
	"core-d-backend/internal/shopping"
	"core-d-backend/internal/stylist"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeModel struct {
	reply  string
	err    error
	prompt string
	images [][]byte
	calls  int
}

func (f *fakeModel) Generate(ctx context.Context, prompt string, images ...[]byte) (string, error) {
	f.calls++
	f.prompt = prompt
	f.images = images
	return f.reply, f.err
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name  string
		reply string
		want  fashion.ItemType
	}{
		{"plain json", `{"item_type": "아우터"}`, fashion.Outer},
		{"fenced json", "```json\n{\"item_type\": \"하의\"}\n```", fashion.Bottom},
		{"legacy korean label", `{"item_type": "바지"}`, fashion.Bottom},
		{"legacy english label", `{"item_type": "Pants"}`, fashion.Bottom},
		{"english alias", `{"item_type": "Outer"}`, fashion.Outer},
		{"missing key", `{"category": "아우터"}`, fashion.Inner},
		{"unknown label", `{"item_type": "모자"}`, fashion.Inner},
		{"not json", "아우터입니다", fashion.Inner},
		{"empty reply", "", fashion.Inner},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			model := &fakeModel{reply: tt.reply}
			got, err := stylist.New(model, fashion.Inner).Classify(context.Background(), []byte("png"))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, 1, model.calls)
			assert.Equal(t, [][]byte{[]byte("png")}, model.images)
		})
	}
}

func TestClassify_ConfigurableDefault(t *testing.T) {
	got, err := stylist.New(&fakeModel{reply: "???"}, fashion.Bottom).Classify(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, fashion.Bottom, got)
}

func TestClassify_ModelError(t *testing.T) {
	_, err := stylist.New(&fakeModel{err: errors.New("quota")}, fashion.Inner).Classify(context.Background(), nil)
	assert.EqualError(t, err, "quota")
}

func TestRecommend(t *testing.T) {
	model := &fakeModel{reply: "```json\n{\"inner\": \"화이트 셔츠\", \"bottom\": \" 와이드 슬랙스 \", \"shoes\": \"로퍼\"}\n```"}
	got, err := stylist.New(model, fashion.Inner).Recommend(context.Background(), []byte("png"),
		fashion.Outer, "올드머니", "가을 웜", "트렌드 요약")
	require.NoError(t, err)

	assert.Equal(t, map[string]string{"inner": "화이트 셔츠", "bottom": "와이드 슬랙스", "shoes": "로퍼"}, got)
	assert.Contains(t, model.prompt, "[최신 패션 트렌드 Context]\n트렌드 요약")
	assert.Contains(t, model.prompt, "업로드된 옷은 **아우터**입니다.")
	assert.Contains(t, model.prompt, "**이너(상의), 하의, 신발**")
	assert.Contains(t, model.prompt, "'올드머니'")
	assert.Contains(t, model.prompt, "'가을 웜'")
	assert.True(t, strings.HasSuffix(model.prompt, fashion.ShapeFor(fashion.Outer).Template()))
}

func TestRecommend_ShapeViolations(t *testing.T) {
	tests := []struct {
		name  string
		reply string
	}{
		{"not json", "추천: 셔츠"},
		{"missing slot", `{"outer": "코트", "bottom": "청바지"}`},
		{"wrong shape", `{"inner": "셔츠", "bottom": "청바지", "shoes": "스니커즈"}`},
		{"empty value", `{"outer": "코트", "bottom": "", "shoes": "부츠"}`},
		{"non-string value", `{"outer": "코트", "bottom": ["청바지"], "shoes": "부츠"}`},
		{"extra key", `{"outer": "코트", "bottom": "청바지", "shoes": "부츠", "bag": "토트백"}`},
		{"array instead of object", `["코트"]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := stylist.New(&fakeModel{reply: tt.reply}, fashion.Inner).Recommend(context.Background(), nil,
				fashion.Inner, "모리걸", "봄 웜", "ctx")
			var parseErr *jsonx.ParseError
			require.ErrorAs(t, err, &parseErr)
			assert.Equal(t, tt.reply, parseErr.Raw)
		})
	}
}

func TestRecommend_ModelError(t *testing.T) {
	upstream := errors.New("deadline exceeded")
	_, err := stylist.New(&fakeModel{err: upstream}, fashion.Inner).Recommend(context.Background(), nil,
		fashion.Bottom, "모리걸", "봄 웜", "ctx")
	assert.ErrorIs(t, err, upstream)
}

func wardrobe() []stylist.Garment {
	return []stylist.Garment{
		{ID: "w1", ItemType: "하의", PNG: []byte("img-w1")},
		{ID: "w2", ItemType: "아우터", PNG: []byte("img-w2")},
		{ID: "w3", ItemType: "하의", PNG: []byte("img-w3")},
	}
}

func TestCoordinate_PromptAndImageOrder(t *testing.T) {
	model := &fakeModel{reply: `{"coordinations": []}`}
	selected := stylist.Garment{ItemType: "이너", PNG: []byte("img-selected")}

	got, err := stylist.New(model, fashion.Inner).Coordinate(context.Background(), selected, wardrobe(), "긱시크", "겨울 쿨")
	require.NoError(t, err)
	assert.Empty(t, got)

	assert.Equal(t, [][]byte{
		[]byte("img-selected"), []byte("img-w1"), []byte("img-w2"), []byte("img-w3"),
	}, model.images)
	assert.Contains(t, model.prompt, `선택한 옷: 이너 (ID: "selected")`)
	assert.Contains(t, model.prompt, "추구미: 긱시크, 퍼스널 컬러: 겨울 쿨")
	assert.Contains(t, model.prompt, "- ID: w1, 종류: 하의\n- ID: w2, 종류: 아우터\n- ID: w3, 종류: 하의")
	assert.Contains(t, model.prompt, "- 선택한 옷이 하의면 → 아우터 또는 이너 중 1개만 추천")
	assert.Contains(t, model.prompt, "- 선택한 옷이 이너면 → 아우터 또는 하의 중 1개만 추천")
	assert.Contains(t, model.prompt, "- 선택한 옷이 아우터면 → 이너 또는 하의 중 1개만 추천")
}

func TestCoordinate_FiltersModelIdentifiers(t *testing.T) {
	reply := "```json\n" + `{"coordinations": [
		{"recommended_item_ids": ["selected", "w2", "w1"], "styling_tip": "첫 코디"},
		{"recommended_item_ids": ["w2", "ghost"], "styling_tip": "중복만 있음"},
		{"recommended_item_ids": ["ghost", "w1", "w3"], "styling_tip": "세 번째"},
		{"recommended_item_ids": ["w3"], "styling_tip": "네 번째는 무시"}
	]}` + "\n```"

	got, err := stylist.New(&fakeModel{reply: reply}, fashion.Inner).Coordinate(context.Background(),
		stylist.Garment{ItemType: "이너"}, wardrobe(), "긱시크", "겨울 쿨")
	require.NoError(t, err)

	assert.Equal(t, []models.Coordination{
		{RecommendedItemIDs: []string{"w2"}, StylingTip: "첫 코디"},
		{RecommendedItemIDs: []string{"w1"}, StylingTip: "세 번째"},
	}, got)
}

func TestCoordinate_OutputInvariants(t *testing.T) {
	replies := []string{
		`{"coordinations": [{"recommended_item_ids": ["w1","w1"]}, {"recommended_item_ids": ["w1"]}, {"recommended_item_ids": ["w1","w2"]}]}`,
		`{"coordinations": [{"recommended_item_ids": ["selected"]}, {"recommended_item_ids": []}, {"recommended_item_ids": ["W1"]}]}`,
		`{"coordinations": [{"recommended_item_ids": ["w3","w2","w1"]}, {"recommended_item_ids": ["w3","w2"]}, {"recommended_item_ids": ["w3","w2","w1"]}]}`,
	}
	known := map[string]bool{"w1": true, "w2": true, "w3": true}

	for _, reply := range replies {
		got, err := stylist.New(&fakeModel{reply: reply}, fashion.Inner).Coordinate(context.Background(),
			stylist.Garment{ItemType: "하의"}, wardrobe(), "모리걸", "봄 웜")
		require.NoError(t, err)
		require.LessOrEqual(t, len(got), 3)

		seen := map[string]bool{}
		for _, c := range got {
			require.Len(t, c.RecommendedItemIDs, 1)
			id := c.RecommendedItemIDs[0]
			assert.NotEqual(t, stylist.SelectedID, id)
			assert.True(t, known[id], "unknown id %q", id)
			assert.False(t, seen[id], "duplicate id %q", id)
			seen[id] = true
		}
	}
}

func TestCoordinate_ParseErrors(t *testing.T) {
	for _, reply := range []string{"no json here", `{"result": []}`, `{"coordinations": "w1"}`} {
		_, err := stylist.New(&fakeModel{reply: reply}, fashion.Inner).Coordinate(context.Background(),
			stylist.Garment{ItemType: "하의"}, wardrobe(), "모리걸", "봄 웜")
		var parseErr *jsonx.ParseError
		assert.ErrorAs(t, err, &parseErr, reply)
	}
}

func TestShopKeywords(t *testing.T) {
	model := &fakeModel{reply: "```json\n" + `[
		{"keyword": "와이드 데님", "description": "편안한 실루엣"},
		{"keyword": "  ", "description": "빈 키워드"},
		{"keyword": "레더 재킷", "description": "포인트"},
		{"keyword": "로퍼", "description": "네 번째는 잘림"}
	]` + "\n```"}

	got, err := stylist.New(model, fashion.Inner).ShopKeywords(context.Background(), []byte("png"), "이너", "고프코어", "여름 쿨")
	require.NoError(t, err)

	require.Len(t, got, 2)
	assert.Equal(t, "와이드 데님", got[0].Keyword)
	assert.Equal(t, "편안한 실루엣", got[0].Description)
	assert.Equal(t, shopping.SearchLinks("와이드 데님"), got[0].SearchLinks)
	assert.Equal(t, "레더 재킷", got[1].Keyword)
	for _, rec := range got {
		assert.NotEmpty(t, rec.Keyword)
		assert.Len(t, rec.SearchLinks, 4)
	}

	assert.Contains(t, model.prompt, "이 이너 사진을 보고")
	assert.Contains(t, model.prompt, "10자 이내")
	assert.Equal(t, [][]byte{[]byte("png")}, model.images)
}

func TestShopKeywords_ParseError(t *testing.T) {
	_, err := stylist.New(&fakeModel{reply: `{"keyword": "x"}`}, fashion.Inner).ShopKeywords(context.Background(), nil, "이너", "고프코어", "여름 쿨")
	var parseErr *jsonx.ParseError
	assert.ErrorAs(t, err, &parseErr)
}
