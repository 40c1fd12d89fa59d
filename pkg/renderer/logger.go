package renderer

import (
	"github.com/golang/glog"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// glogLogger routes renderer progress to glog at verbosity 1
type glogLogger struct {
	level glog.Level
}

// NewGlogLogger returns a logger that writes through glog when -v >= 1
func NewGlogLogger() core.Logger {
	return glogLogger{level: 1}
}

func (l glogLogger) Printf(format string, args ...interface{}) {
	glog.V(l.level).Infof(format, args...)
}
