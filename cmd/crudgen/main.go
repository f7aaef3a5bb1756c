// crudgen generates layered CRUD stacks from entity descriptors.
//
//	crudgen generate -p example.com/app/crud -t ./crud ./model
//	crudgen generate --watch schema/widgets.yaml
//	crudgen tables --dsn 'file:app.db' schema/widgets.yaml
package main

import (
	"errors"
	"os"

	"github.com/jessevdk/go-flags"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	opts := newOptions()
	parser := flags.NewParser(opts, flags.Default)
	if _, err := parser.ParseArgs(args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return 0
		}
		return 1
	}
	return 0
}
