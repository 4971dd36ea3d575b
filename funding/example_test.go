//go:build unit

package funding_test

import (
	"fmt"
	"time"

	"github.com/galtzo-floss/floss-funding-go/funding"
	"github.com/galtzo-floss/floss-funding-go/funding/nag"
)

// A library asks for support at load time. The reporter decides what a
// reminder looks like; the registry decides whether one fires at all.
func Example() {
	registry := funding.NewRegistry(
		funding.WithConfig(funding.Config{OnLoadMaxAgeSeconds: 600, AtExitMaxAgeSeconds: 86400}),
		funding.WithStores(nag.NopStore{}, nag.NopStore{}),
		funding.WithClock(func() time.Time {
			return time.Date(2025, time.November, 1, 0, 0, 0, 0, time.UTC)
		}),
	)

	registry.SetReporter(func(ev funding.ActivationEvent) {
		fmt.Printf("please consider supporting %s (%s)\n", ev.Library.Name, ev.State)
	})

	_, err := registry.Register("Acme::Widgets", funding.LibraryRef{Name: "acme-widgets"})
	if err != nil {
		fmt.Println("registration failed:", err)
	}

	// Output:
	// please consider supporting acme-widgets (unactivated)
}
