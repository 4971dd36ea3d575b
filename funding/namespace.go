package funding

// Namespace is one activation scope: the hierarchical name, its derived
// environment-variable name, the token resolved at registration, the computed
// state, and the ordered list of events observed for it.
//
// A Namespace is immutable except for its event list, which only grows. A
// changed token produces a fresh Namespace instance inside the registry
// rather than mutating an existing one. All mutation is serialized by the
// owning Registry; a Namespace handed out by accessor methods is read-only.
type Namespace struct {
	name       string
	envVarName string
	token      string
	state      State
	events     []ActivationEvent
}

// Name returns the hierarchical namespace string.
func (n *Namespace) Name() string {
	return n.name
}

// EnvVarName returns the derived environment-variable name.
func (n *Namespace) EnvVarName() string {
	return n.envVarName
}

// Token returns the raw token resolved at registration time.
func (n *Namespace) Token() string {
	return n.token
}

// State returns the classification computed for this namespace's token.
func (n *Namespace) State() State {
	return n.state
}

// Events returns a copy of the ordered event list.
func (n *Namespace) Events() []ActivationEvent {
	out := make([]ActivationEvent, len(n.events))
	copy(out, n.events)

	return out
}
