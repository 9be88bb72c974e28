// Package reference generates transaction references submitted to the
// payment gateway and echoed back by it.
package reference

import (
	"fmt"
	"math/rand"
	"time"
)

// Prefix namespaces every reference issued by this system.
const Prefix = "SA_"

const (
	suffixLen = 9
	alphabet  = "0123456789abcdefghijklmnopqrstuvwxyz"
)

type Generator struct {
	now func() time.Time
}

func New() *Generator {
	return &Generator{now: time.Now}
}

// Generate returns a reference of the form SA_<unix-millis>_<random base36>.
// The random suffix keeps consecutive calls within the same millisecond
// distinct; a collision at the gateway only costs a retry.
func (g *Generator) Generate() string {
	suffix := make([]byte, suffixLen)
	for i := range suffix {
		suffix[i] = alphabet[rand.Intn(len(alphabet))]
	}
	return fmt.Sprintf("%s%d_%s", Prefix, g.now().UnixMilli(), suffix)
}
