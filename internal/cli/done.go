package cli

import "fmt"

type DoneCmd struct {
	ID int `arg:"" help:"Habit ID to toggle done-today."`
}

func (c *DoneCmd) Run(ctx *Context) error {
	svc := ctx.App.HabitService

	// Toggle reads the current status from the working set, so it has
	// to be populated first.
	svc.Refresh(ctx.Ctx)

	if err := svc.Toggle(ctx.Ctx, c.ID); err != nil {
		return err
	}

	for _, h := range svc.Habits() {
		if h.ID == c.ID {
			if h.DoneToday {
				fmt.Printf("Habit #%d marked done for today\n", c.ID)
			} else {
				fmt.Printf("Habit #%d marked not done\n", c.ID)
			}
			return nil
		}
	}
	return nil
}
