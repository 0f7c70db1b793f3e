package model

import "context"

type Localizer interface {
	LocalizedName(context.Context, Language) (string, error)
}
