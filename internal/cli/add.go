package cli

import "fmt"

type AddCmd struct {
	Title       string `arg:"" help:"Habit title."`
	Description string `short:"d" help:"Optional description."`
}

func (c *AddCmd) Run(ctx *Context) error {
	if err := ctx.App.HabitService.Create(ctx.Ctx, c.Title, c.Description); err != nil {
		return err
	}
	fmt.Printf("Added habit %q\n", c.Title)
	return nil
}
