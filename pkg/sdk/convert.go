package promptlab

import (
	domcol "github.com/kailas-cloud/promptlab/internal/domain/collection"
	domprompt "github.com/kailas-cloud/promptlab/internal/domain/prompt"
	"github.com/kailas-cloud/promptlab/internal/domain/prompt/patch"
	promptuc "github.com/kailas-cloud/promptlab/internal/usecase/prompt"
)

func fromInternalPrompt(p domprompt.Prompt) Prompt {
	return Prompt{
		ID:           p.ID(),
		Title:        p.Title(),
		Content:      p.Content(),
		Description:  p.Description(),
		CollectionID: p.CollectionID(),
		CreatedAt:    p.CreatedAt(),
		UpdatedAt:    p.UpdatedAt(),
	}
}

func fromInternalPrompts(in []domprompt.Prompt) []Prompt {
	out := make([]Prompt, len(in))
	for i, p := range in {
		out[i] = fromInternalPrompt(p)
	}
	return out
}

func fromInternalCollection(c domcol.Collection) Collection {
	return Collection{
		ID:          c.ID(),
		Name:        c.Name(),
		Description: c.Description(),
		CreatedAt:   c.CreatedAt(),
	}
}

func toInternalInput(in PromptInput) promptuc.Input {
	return promptuc.Input{
		Title:        in.Title,
		Content:      in.Content,
		Description:  in.Description,
		CollectionID: in.CollectionID,
	}
}

func toInternalPatch(p PromptPatch) (patch.Patch, error) {
	return patch.New(p.Title, p.Content, p.Description, p.CollectionID)
}
