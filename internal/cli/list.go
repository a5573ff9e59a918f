package cli

import "fmt"

type ListCmd struct {
	Search string `short:"s" help:"Filter habits by title (case-insensitive)."`
}

func (c *ListCmd) Run(ctx *Context) error {
	svc := ctx.App.HabitService
	svc.SetSearchText(c.Search)
	svc.Refresh(ctx.Ctx)

	habits := svc.VisibleHabits()
	if len(habits) == 0 {
		fmt.Println("No habits found")
		return nil
	}

	fmt.Println("Habits:")
	for _, h := range habits {
		mark := " "
		if h.DoneToday {
			mark = "x"
		}
		fmt.Printf("  [%s] #%d %s\n", mark, h.ID, h.Title)
		if h.Description != "" {
			fmt.Printf("      %s\n", h.Description)
		}
	}

	return nil
}
