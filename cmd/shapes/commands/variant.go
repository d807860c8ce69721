package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"

	"shapes/internal/domain"
)

// variantValue is a pflag.Value restricted to the known variants.
type variantValue struct{ v *domain.Variant }

var _ pflag.Value = variantValue{}

func (f variantValue) String() string {
	if f.v == nil {
		return ""
	}
	return f.v.String()
}

func (f variantValue) Set(s string) error {
	v := domain.Variant(strings.ToLower(strings.TrimSpace(s)))
	if !v.Valid() {
		names := make([]string, len(domain.Variants))
		for i, known := range domain.Variants {
			names[i] = known.String()
		}
		return fmt.Errorf("must be one of %s", strings.Join(names, ", "))
	}
	*f.v = v
	return nil
}

func (f variantValue) Type() string { return "variant" }
