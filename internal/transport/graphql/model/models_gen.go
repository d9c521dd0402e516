// Code generated by github.com/99designs/gqlgen, DO NOT EDIT.

package model

import (
	"github.com/google/uuid"
	"github.com/hallfrida/ordasafn-backend/internal/domain"
)

type Mutation struct {
}

type NewLanguageInput struct {
	Name        string             `json:"name"`
	Native      *string            `json:"native,omitempty"`
	Release     domain.Release     `json:"release"`
	Genre       []domain.DictGenre `json:"genre"`
	Abstract    *string            `json:"abstract,omitempty"`
	Description *string            `json:"description,omitempty"`
	Rights      *string            `json:"rights,omitempty"`
	License     *string            `json:"license,omitempty"`
}

type NewWordInput struct {
	Norm         string              `json:"norm"`
	Native       *string             `json:"native,omitempty"`
	Lemma        *uuid.UUID          `json:"lemma,omitempty"`
	Language     uuid.UUID           `json:"language"`
	PartOfSpeech domain.PartOfSpeech `json:"partOfSpeech"`
	Audio        *string             `json:"audio,omitempty"`
	Video        *string             `json:"video,omitempty"`
	Image        *string             `json:"image,omitempty"`
	Description  *string             `json:"description,omitempty"`
	Etymology    *string             `json:"etymology,omitempty"`
	Usage        *string             `json:"usage,omitempty"`
	Morphology   *string             `json:"morphology,omitempty"`
}

type Query struct {
}
