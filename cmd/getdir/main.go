package main

import (
	"context"
	"log"
	"os"
	"os/signal"

	"github.com/leodido/getdir/debug"
	internalcli "github.com/leodido/getdir/internal/cli"
	"github.com/spf13/afero"
)

func main() {
	log.SetFlags(0)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	c, err := internalcli.NewRootC(afero.NewOsFs(), debug.Options{Exit: true})
	if err != nil {
		log.Fatalln(err)
	}

	if err := c.ExecuteContext(ctx); err != nil {
		stop()
		log.Fatalln(err)
	}
}
