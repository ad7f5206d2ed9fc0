// @title           Core-D API
// @version         0.1.0
// @description     Personal color and aesthetic based fashion styling API. Removes garment backgrounds, classifies garments, recommends outfits, matches the user's wardrobe and builds shopping search links.

// @host      localhost:8000
// @BasePath  /

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and a Supabase access token. Only enforced when SUPABASE_JWT_SECRET is set.

package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"
)

const version = "0.1.0"

func main() {
	if err := fang.Execute(
		context.Background(),
		newRootCmd(),
		fang.WithVersion(version),
		fang.WithNotifySignal(os.Interrupt, os.Kill),
	); err != nil {
		os.Exit(1)
	}
}
