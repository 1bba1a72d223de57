package indicator_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/macropower/pagedots/pkg/indicator"
)

func TestSignal(t *testing.T) {
	t.Parallel()

	sig := indicator.NewSignal()

	var wg sync.WaitGroup
	for range 10 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			sig.Notify()
		}()
	}

	wg.Wait()

	assert.Len(t, sig.C(), 1)

	<-sig.C()

	assert.Empty(t, sig.C())
}
