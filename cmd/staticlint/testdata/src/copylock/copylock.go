package copylock

import (
	"sync"
)

func copies() {
	var mu sync.Mutex
	muCopy := mu // want "assignment copies lock value to muCopy: sync.Mutex"
	muCopy.Lock()
}
