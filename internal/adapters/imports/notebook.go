package imports

import (
	"encoding/json"
	"strings"

	"go.trai.ch/envscan/internal/core/domain"
)

type notebookDoc struct {
	Metadata struct {
		Kernelspec *struct {
			Language string `json:"language"`
			Name     string `json:"name"`
		} `json:"kernelspec"`
		LanguageInfo *struct {
			Name string `json:"name"`
		} `json:"language_info"`
	} `json:"metadata"`
	Cells []struct {
		CellType string     `json:"cell_type"`
		Source   cellSource `json:"source"`
	} `json:"cells"`
}

// cellSource accepts both the list-of-lines and the single-string encoding.
type cellSource string

func (s *cellSource) UnmarshalJSON(b []byte) error {
	var lines []string
	if err := json.Unmarshal(b, &lines); err == nil {
		*s = cellSource(strings.Join(lines, ""))
		return nil
	}
	var single string
	if err := json.Unmarshal(b, &single); err != nil {
		return err
	}
	*s = cellSource(single)
	return nil
}

func extractNotebook(data []byte) (domain.FileImports, error) {
	var doc notebookDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return domain.NoImports(), err
	}

	res := domain.NoImports()
	langName := ""
	if ks := doc.Metadata.Kernelspec; ks != nil {
		res.Kernel = ks.Name
		langName = ks.Language
	}
	if langName == "" && doc.Metadata.LanguageInfo != nil {
		langName = doc.Metadata.LanguageInfo.Name
	}

	language, ok := domain.ParseLanguage(langName)
	if !ok {
		return res, nil
	}
	res.Language = language
	res.Modules.Add(language.KernelShim())

	var code []string
	for _, cell := range doc.Cells {
		if cell.CellType != "code" {
			continue
		}
		code = append(code, cellCode(language, string(cell.Source)))
	}

	combined := strings.Join(code, "\n")
	switch language {
	case domain.LanguagePython:
		res.Modules.AddAll(extractPython(combined))
	case domain.LanguageR:
		res.Modules.AddAll(extractR(combined))
	}
	return res, nil
}

// cellCode drops single-% line magics from python cells. Cell magics
// starting with %% stay in the source.
func cellCode(language domain.Language, src string) string {
	if language != domain.LanguagePython {
		return src
	}
	lines := strings.Split(src, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if strings.HasPrefix(line, "%") && !strings.HasPrefix(line, "%%") {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}
