// Package glyphs lists the Nerd Font and Unicode symbols drawn in the prompt.
// A patched Nerd Font is required for the private-use code points.
package glyphs

const (
	LeftHardDivider = "\ue0b0" // powerline triangle
	Branch          = "\ue0a0"
	ShipWheel       = "⎈"
	Warning         = "\uf071"
	Lock            = "\uf023"
	SSH             = "\U000f08c0"
	Docker          = "\U000f0868"
	Terraform       = "\U000f1062"

	Ahead      = "⬆"
	Behind     = "⬇"
	Staged     = "✔"
	Modified   = "✎"
	Untracked  = "+"
	Conflicted = "✼"

	Running    = "●"
	Paused     = "~"
	Exited     = "✖"
	Restarting = "↻"
)
