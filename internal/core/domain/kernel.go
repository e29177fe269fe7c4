package domain

import "strings"

// KernelLocation is where a notebook kernel name says its environment lives.
type KernelLocation int

const (
	// KernelUnknown means the kernel name does not follow a known convention.
	KernelUnknown KernelLocation = iota
	// KernelAnacondaRoot is the root environment of the shared installation.
	KernelAnacondaRoot
	// KernelAnacondaEnv is a named environment of the shared installation.
	KernelAnacondaEnv
	// KernelProjectEnv is a named environment of the project itself.
	KernelProjectEnv
)

const (
	kernelRoot         = "conda-root"
	kernelAnacondaBase = "conda-env-anaconda-"
	kernelEnvBase      = "conda-env-"
)

// KernelTarget is the parsed form of a kernelspec name.
type KernelTarget struct {
	Location KernelLocation
	// Env is the environment name for KernelAnacondaEnv and KernelProjectEnv.
	Env string
}

// ParseKernelName maps a kernel name such as conda-env-myproj-default-py
// onto the environment it runs in. The trailing language part is dropped
// before matching.
func ParseKernelName(project, kernel string) KernelTarget {
	i := strings.LastIndex(kernel, "-")
	if i < 0 {
		return KernelTarget{}
	}
	loc := kernel[:i]

	switch {
	case loc == kernelRoot:
		return KernelTarget{Location: KernelAnacondaRoot}
	case strings.HasPrefix(loc, kernelAnacondaBase) && len(loc) > len(kernelAnacondaBase):
		return KernelTarget{Location: KernelAnacondaEnv, Env: loc[len(kernelAnacondaBase):]}
	case project != "" && strings.HasPrefix(loc, kernelEnvBase+project+"-"):
		env := loc[len(kernelEnvBase+project+"-"):]
		if env == "" {
			return KernelTarget{}
		}
		return KernelTarget{Location: KernelProjectEnv, Env: env}
	default:
		return KernelTarget{}
	}
}
