// Package funding lets a library politely ask its consumers for voluntary
// financial support at load time, without ever breaking their program.
//
// A host library registers its namespace with a Registry; the registry reads
// the raw token from the namespace's derived environment variable, classifies
// it (activated, unactivated, invalid), and, unless silenced or already
// throttled, hands an ActivationEvent to the integrator's reporter callback.
// What the reminder looks like is entirely up to the integrator.
//
// Nothing in this package enforces anything: a failed classification never
// blocks execution, and every persistence failure inside the throttle
// degrades to "show the reminder" rather than raising.
//
//	registry := funding.NewRegistry()
//	registry.SetReporter(func(ev funding.ActivationEvent) {
//	    fmt.Println("please consider supporting", ev.Library.Name)
//	})
//	_, err := registry.Register("Acme::Widgets", funding.LibraryRef{Name: "acme-widgets"})
package funding
