package theme

var defaultTheme = Theme{
	Name: Default,

	Cwd:       Pair{FG: 254, BG: 237},
	Root:      Pair{FG: 15, BG: 236},
	SSH:       Pair{FG: 254, BG: 166},
	Readonly:  Pair{FG: 254, BG: 124},
	Container: Pair{FG: 177, BG: 55},
	Terraform: Pair{FG: 231, BG: 93},

	GitBranch:     Pair{FG: 0, BG: 148},
	GitAhead:      Pair{FG: 250, BG: 240},
	GitBehind:     Pair{FG: 250, BG: 240},
	GitStaged:     Pair{FG: 15, BG: 22},
	GitModified:   Pair{FG: 15, BG: 130},
	GitUntracked:  Pair{FG: 15, BG: 52},
	GitConflicted: Pair{FG: 15, BG: 9},

	KubeContext:   Pair{FG: 231, BG: 26},
	KubeNamespace: Pair{FG: 231, BG: 31},
}

var gruvboxTheme = Theme{
	Name: "gruvbox",

	Cwd:       Pair{FG: 223, BG: 239},
	Root:      Pair{FG: 223, BG: 237},
	SSH:       Pair{FG: 229, BG: 96},
	Readonly:  Pair{FG: 229, BG: 124},
	Container: Pair{FG: 229, BG: 96},
	Terraform: Pair{FG: 229, BG: 132},

	GitBranch:     Pair{FG: 235, BG: 142},
	GitAhead:      Pair{FG: 223, BG: 241},
	GitBehind:     Pair{FG: 223, BG: 241},
	GitStaged:     Pair{FG: 235, BG: 106},
	GitModified:   Pair{FG: 235, BG: 172},
	GitUntracked:  Pair{FG: 223, BG: 88},
	GitConflicted: Pair{FG: 229, BG: 167},

	KubeContext:   Pair{FG: 229, BG: 66},
	KubeNamespace: Pair{FG: 229, BG: 109},
}
