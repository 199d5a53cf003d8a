package params

import "fmt"

// Validate checks basic shape and sizes of the parameter set. It performs no
// primality check of the modulus the tables were generated for; that contract
// stays with the caller.
func Validate(p *Parameters) error {
	if err := p.Config.check(); err != nil {
		return err
	}
	need := p.Width * (p.FullRounds + p.PartialRounds)
	if len(p.RoundConstants) < need {
		return fmt.Errorf("poseidon255: round constant table too short (%d entries, schedule consumes %d)", len(p.RoundConstants), need)
	}
	if len(p.MDS) != p.Width*p.Width {
		return fmt.Errorf("poseidon255: mds length mismatch (%d entries for width %d)", len(p.MDS), p.Width)
	}
	return nil
}
