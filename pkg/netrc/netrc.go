package netrc

// DefaultMachine is the key of the fallback entry consulted when no exact
// host match exists.
const DefaultMachine = "default"

// Machine is a single netrc entry.
type Machine struct {
	Login    string
	Password string
	Account  string
}

// Netrc maps host names to their netrc entries. Tables are produced by
// Parse or Load and are read-only afterwards.
type Netrc map[string]Machine

// Machine returns the entry for host, falling back to the "default" entry.
func (n Netrc) Machine(host string) (Machine, bool) {
	if machine, ok := n[host]; ok {
		return machine, true
	}

	machine, ok := n[DefaultMachine]

	return machine, ok
}
