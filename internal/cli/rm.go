package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

type RmCmd struct {
	ID    int  `arg:"" help:"Habit ID to delete."`
	Force bool `short:"f" help:"Skip the confirmation prompt."`
}

func (c *RmCmd) Run(ctx *Context) error {
	if !c.Force {
		fmt.Printf("Delete habit #%d? [y/N] ", c.ID)
		reader := bufio.NewReader(os.Stdin)
		answer, _ := reader.ReadString('\n')
		if strings.ToLower(strings.TrimSpace(answer)) != "y" {
			fmt.Println("Aborted")
			return nil
		}
	}

	if err := ctx.App.HabitService.Remove(ctx.Ctx, c.ID); err != nil {
		return err
	}
	fmt.Printf("Deleted habit #%d\n", c.ID)
	return nil
}
