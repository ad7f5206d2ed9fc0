package stylist

import (
	"fmt"
	"strings"

	"core-d-backend/internal/fashion"
)

const classifyPrompt = "이 옷 이미지를 보고 다음 세 가지 중 하나로만 분류해줘.\n" +
	"- 아우터 (코트, 자켓, 패딩, 블레이저 등 겉에 입는 옷)\n" +
	"- 이너 (티셔츠, 니트, 셔츠, 블라우스 등 안에 입는 상의)\n" +
	"- 하의 (청바지, 슬랙스, 트레이닝 팬츠, 스커트, 치마, 반바지 등)\n\n" +
	"반드시 다음 JSON 형식으로만 응답해. 다른 텍스트는 포함하지 마.\n" +
	`{"item_type": "아우터"}`

func recommendPrompt(trendContext string, itemType fashion.ItemType, shape fashion.Shape, aesthetic, personalColor string) string {
	return fmt.Sprintf("[최신 패션 트렌드 Context]\n%s\n\n---\n\n"+
		"업로드된 옷은 **%s**입니다.\n"+
		"이 옷의 특징(색상, 스타일, 소재 등)을 파악하고, "+
		"사용자가 선택한 추구미 '%s'와 퍼스널 컬러 '%s'를 고려해서, "+
		"위 [최신 패션 트렌드]를 반영하여 이 %s과 함께 입으면 좋을 "+
		"**%s**을 구체적으로 추천해줘.\n\n"+
		"반드시 다음 JSON 형식으로만 응답해. 다른 텍스트는 포함하지 마.\n\n%s",
		trendContext, itemType, aesthetic, personalColor, itemType, shape.Description(), shape.Template())
}

func coordinatePrompt(selectedType string, wardrobe []Garment, aesthetic, personalColor string) string {
	lines := make([]string, len(wardrobe))
	for i, item := range wardrobe {
		lines[i] = fmt.Sprintf("- ID: %s, 종류: %s", item.ID, item.ItemType)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "선택한 옷: %s (ID: %q)\n", selectedType, SelectedID)
	fmt.Fprintf(&b, "추구미: %s, 퍼스널 컬러: %s\n", aesthetic, personalColor)
	fmt.Fprintf(&b, "옷장 아이템:\n%s\n\n", strings.Join(lines, "\n"))
	b.WriteString("첨부된 이미지들: 첫 번째는 선택한 옷, 이후는 옷장 아이템 (목록 순서와 동일)\n\n")
	b.WriteString("규칙:\n")
	fmt.Fprintf(&b, "- recommended_item_ids에는 반드시 옷장 아이템 ID 1개만 넣어 (%q 절대 금지)\n", SelectedID)
	for _, t := range fashion.ItemTypes {
		c := fashion.Complements(t)
		fmt.Fprintf(&b, "- 선택한 옷이 %s면 → %s 또는 %s 중 1개만 추천\n", t, c[0], c[1])
	}
	fmt.Fprintf(&b, "- %d세트는 서로 다른 아이템으로 구성 (같은 ID 중복 사용 금지)\n", maxCoordinations)
	b.WriteString("- 옷장 아이템이 부족하면 가능한 수만큼만 만들어줘\n\n")
	b.WriteString("반드시 아래 JSON 형식으로만 응답해. 다른 텍스트 포함하지 마.\n\n")
	b.WriteString(`{"coordinations": [`)
	for i := 0; i < maxCoordinations; i++ {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(`{"recommended_item_ids": ["옷장아이템id1개만"], "styling_tip": "팁"}`)
	}
	b.WriteString("]}")
	return b.String()
}

func shopPrompt(itemType, aesthetic, personalColor string) string {
	item := `{"keyword": "검색 키워드", "description": "추천 이유"}`
	return fmt.Sprintf("이 %s 사진을 보고, 추구미 '%s'와 퍼스널 컬러 '%s'에 어울리는 "+
		"코디 아이템 %d가지를 추천해줘.\n"+
		"각 아이템은 쇼핑몰에서 검색할 구체적인 키워드(한국어, 10자 이내)와 "+
		"추천 이유 한 줄을 포함해야 해.\n"+
		"반드시 아래 JSON 형식으로만 응답해. 다른 텍스트 포함하지 마.\n\n[%s,%s,%s]",
		itemType, aesthetic, personalColor, maxShopItems, item, item, item)
}
