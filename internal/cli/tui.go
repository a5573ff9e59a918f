package cli

import (
	"github.com/thenoetrevino/rutina/internal/launcher"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *Context) error {
	return launcher.Launch(ctx.Ctx, ctx.App)
}
