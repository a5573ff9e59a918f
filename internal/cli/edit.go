package cli

import "fmt"

type EditCmd struct {
	ID          int    `arg:"" help:"Habit ID."`
	Title       string `arg:"" help:"New title."`
	Description string `short:"d" help:"New description."`
}

func (c *EditCmd) Run(ctx *Context) error {
	if err := ctx.App.HabitService.Edit(ctx.Ctx, c.ID, c.Title, c.Description); err != nil {
		return err
	}
	fmt.Printf("Updated habit #%d\n", c.ID)
	return nil
}
