package domain

import "strings"

// Language identifies the source language a module set belongs to.
type Language string

const (
	// LanguageNone marks a file whose language is unknown or unsupported.
	LanguageNone Language = ""
	// LanguagePython is the general-purpose scripting language.
	LanguagePython Language = "python"
	// LanguageR is the statistical language.
	LanguageR Language = "r"
)

// Languages lists every supported language in a stable order.
func Languages() []Language {
	return []Language{LanguagePython, LanguageR}
}

// ParseLanguage maps a kernelspec language string onto a supported Language.
func ParseLanguage(s string) (Language, bool) {
	switch Language(strings.ToLower(strings.TrimSpace(s))) {
	case LanguagePython:
		return LanguagePython, true
	case LanguageR:
		return LanguageR, true
	default:
		return LanguageNone, false
	}
}

// Anchor returns the module that is always looked up so the runtime counts as in use.
func (l Language) Anchor() string {
	switch l {
	case LanguagePython:
		return "os"
	case LanguageR:
		return "base"
	default:
		return ""
	}
}

// KernelShim returns the module a notebook kernel of this language always needs.
func (l Language) KernelShim() string {
	switch l {
	case LanguagePython:
		return "ipykernel"
	case LanguageR:
		return "IRkernel"
	default:
		return ""
	}
}

// RuntimePackage returns the package name of the language runtime itself.
func (l Language) RuntimePackage() string {
	switch l {
	case LanguagePython:
		return "python"
	case LanguageR:
		return "r-base"
	default:
		return ""
	}
}

// RuntimePackages lists the runtime package of every supported language.
func RuntimePackages() []string {
	langs := Languages()
	out := make([]string, 0, len(langs))
	for _, l := range langs {
		out = append(out, l.RuntimePackage())
	}
	return out
}

func (l Language) String() string {
	if l == LanguageNone {
		return "none"
	}
	return string(l)
}
