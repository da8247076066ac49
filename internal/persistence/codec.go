package persistence

import (
	"github.com/bytedance/sonic"

	"github.com/thenoetrevino/kanbanned/internal/models"
)

// api matches encoding/json output so stored documents stay portable
var api = sonic.ConfigStd

func encode(data models.AppData) (string, error) {
	return api.MarshalToString(data)
}

// decode parses the stored document into a generic tree for normalisation
func decode(raw string) (any, error) {
	var v any
	if err := api.UnmarshalFromString(raw, &v); err != nil {
		return nil, err
	}
	return v, nil
}
