package cli

import "fmt"

type ImportCmd struct{}

func (c *ImportCmd) Run(ctx *Context) error {
	fmt.Println("Importing habits from feed...")

	inserted, err := ctx.App.HabitService.ImportFromFeed(ctx.Ctx)
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	fmt.Printf("Imported %d new habits\n", inserted)
	return nil
}
