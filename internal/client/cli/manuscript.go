package cli

import (
	"context"
	"fmt"
	"log"
	"os"
)

func (a *App) submit(ctx context.Context, args []string) {
	var path string
	if len(args) > 0 {
		path = args[0]
	} else {
		p, err := getSimpleText(a.reader, "Enter path to the manuscript file", os.Stdout)
		if err != nil {
			log.Println(err.Error())
			return
		}
		path = p
	}

	m, err := a.manuscriptService.Submit(ctx, path)
	if err != nil {
		log.Println(err.Error())
		return
	}

	fmt.Printf("Submitted: %s\n", m.ID)
}

func (a *App) review(ctx context.Context, args []string) {
	if len(args) < 2 {
		fmt.Println("Usage: review <manuscript-id> <Accept|Reject>")
		return
	}

	m, partial, err := a.manuscriptService.Review(ctx, args[0], args[1])
	if err != nil {
		log.Println(err.Error())
		return
	}

	fmt.Printf("Recorded. Manuscript is now %s (%d reviews)\n", m.Status, len(m.Reviews))
	if partial {
		fmt.Println("Warning: some reviewer payouts failed and will need a retry")
	}
}

func (a *App) list(ctx context.Context, args []string) {
	status := ""
	if len(args) > 0 {
		status = args[0]
	}

	items, err := a.manuscriptService.List(ctx, "", status)
	if err != nil {
		log.Println(err.Error())
		return
	}

	for _, item := range items {
		fmt.Println(item)
	}
}

func (a *App) mine(ctx context.Context) {
	items, err := a.manuscriptService.List(ctx, a.wallet, "")
	if err != nil {
		log.Println(err.Error())
		return
	}

	for _, item := range items {
		fmt.Println(item)
	}
}

func (a *App) show(ctx context.Context, args []string) {
	var id string
	if len(args) > 0 {
		id = args[0]
	} else {
		v, err := getSimpleText(a.reader, "Enter manuscript ID", os.Stdout)
		if err != nil {
			log.Println(err.Error())
			return
		}
		id = v
	}

	m, err := a.manuscriptService.Get(ctx, id)
	if err != nil {
		log.Println(err.Error())
		return
	}

	fmt.Print(m.Details())
}

func (a *App) download(ctx context.Context, args []string) {
	if len(args) == 0 {
		fmt.Println("Usage: download <manuscript-id>")
		return
	}

	path, err := a.manuscriptService.Download(ctx, args[0])
	if err != nil {
		log.Println(err.Error())
		return
	}

	fmt.Printf("Saved to %s\n", path)
}
