package cli

import (
	"context"
	"fmt"
	"log"
	"os"
)

func (a *App) whoami(ctx context.Context) {
	u, err := a.manuscriptService.Profile(ctx, a.wallet)
	if err != nil {
		log.Println(err.Error())
		return
	}
	fmt.Println(u)
}

func (a *App) updateEducation(ctx context.Context) {
	education, err := getSimpleText(a.reader, "Enter education", os.Stdout)
	if err != nil {
		log.Println(err.Error())
		return
	}

	if err := a.manuscriptService.UpdateEducation(ctx, education); err != nil {
		log.Println(err.Error())
		return
	}

	fmt.Println("Updated")
}
