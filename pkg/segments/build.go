package segments

// Options carries the per-integration settings. A nil section disables
// its generator.
type Options struct {
	CwdDirOnly bool
	Kube       *KubeOptions
	Containers *ContainersOptions
	Terraform  *TerraformOptions
}

// Build returns the generators for order. Kinds whose section is missing
// from opts are left out.
func Build(order []Kind, opts Options, env *Env) []Generator {
	gens := make([]Generator, 0, len(order))
	for _, k := range order {
		var g Generator
		switch k {
		case KindCwd:
			g = NewCwd(opts.CwdDirOnly, env)
		case KindRoot:
			g = NewRoot(env)
		case KindGit:
			g = NewGit(env)
		case KindKube:
			if opts.Kube != nil {
				g = NewKube(*opts.Kube, env)
			}
		case KindContainers:
			if opts.Containers != nil {
				g = NewContainers(*opts.Containers, env.Logger.With().Str("segment", string(k)).Logger())
			}
		case KindSSH:
			g = NewSSH(env)
		case KindReadonly:
			g = NewReadonly(env)
		case KindTerraform:
			if opts.Terraform != nil {
				g = NewTerraform(*opts.Terraform, env)
			}
		case KindNewline:
			g = Newline{}
		}
		if g == nil {
			env.Logger.Debug().Str("segment", string(k)).Msg("segment not configured, skipping")
			continue
		}
		gens = append(gens, g)
	}
	return gens
}
