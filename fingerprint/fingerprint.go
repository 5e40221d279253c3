// Package fingerprint gives a declaration set a stable identity. The
// set is reduced to a canonical form, encoded as deterministic CBOR,
// and digested with BLAKE2b-256, so two fingerprints agree exactly when
// the command name and the effective declarations agree, regardless of
// the order anything was supplied in.
package fingerprint

import (
	"encoding/hex"
	"fmt"
	"sort"

	"github.com/fxamacker/cbor/v2"
	"golang.org/x/crypto/blake2b"

	"github.com/xaanit/ArgumentParse/args"
)

// Fingerprint is the 32-byte digest of a command's canonical
// declaration set.
type Fingerprint [32]byte

// canonicalForm is what actually gets encoded. Version guards against
// silent drift if the encoding ever changes.
type canonicalForm struct {
	Version uint8
	Command string
	Decls   []canonicalDecl
}

type canonicalDecl struct {
	Name     string
	Position int
	Type     string
	Required bool
}

// New computes the fingerprint for a command and its declarations.
func New(command string, decls []args.Argument) (Fingerprint, error) {
	data, err := marshalCanonical(command, decls)
	if err != nil {
		return Fingerprint{}, err
	}
	return Fingerprint(blake2b.Sum256(data)), nil
}

func marshalCanonical(command string, decls []args.Argument) ([]byte, error) {
	normalized := args.Normalize(decls)

	canon := make([]canonicalDecl, len(normalized))
	for i, d := range normalized {
		canon[i] = canonicalDecl{
			Name:     d.Name,
			Position: d.Position,
			Type:     d.Type,
			Required: d.Required,
		}
	}

	// Normalize keeps caller order for equal positions; the canonical
	// form needs a total order instead.
	sort.Slice(canon, func(i, j int) bool {
		a, b := canon[i], canon[j]
		if a.Position != b.Position {
			return a.Position < b.Position
		}
		if a.Name != b.Name {
			return a.Name < b.Name
		}
		if a.Type != b.Type {
			return a.Type < b.Type
		}
		return !a.Required && b.Required
	})

	encMode, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		return nil, fmt.Errorf("fingerprint: init canonical encoder: %w", err)
	}

	data, err := encMode.Marshal(canonicalForm{Version: 1, Command: command, Decls: canon})
	if err != nil {
		return nil, fmt.Errorf("fingerprint: encode canonical form: %w", err)
	}
	return data, nil
}

// Hex returns the full lowercase hex digest.
func (f Fingerprint) Hex() string {
	return hex.EncodeToString(f[:])
}

// Short returns the leading 8 hex characters, enough for display.
func (f Fingerprint) Short() string {
	return f.Hex()[:8]
}

func (f Fingerprint) String() string {
	return f.Hex()
}

// Equal reports whether two fingerprints are identical.
func (f Fingerprint) Equal(other Fingerprint) bool {
	return f == other
}
