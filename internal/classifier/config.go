package classifier

import (
	"github.com/go-sod/clsdemo/internal/geom"
)

type Config struct {
	Policy   DegeneratePolicy      `envconfig:"CLSDEMO_DEGENERATE_POLICY" default:"PROPAGATE"`
	Distance geom.DistanceFuncType `envconfig:"CLSDEMO_DISTANCE_FUNC" default:"EUCLIDEAN"`
	DefaultK int                   `envconfig:"CLSDEMO_DEFAULT_K" default:"3"`
}
