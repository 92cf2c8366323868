package main

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// output is the result of a command. Empty fields are not shown.
type output struct {
	Npub            st   `yaml:"npub,omitempty"`
	Nsec            st   `yaml:"nsec,omitempty"`
	PublicHex       st   `yaml:"public_hex,omitempty"`
	SecretHex       st   `yaml:"secret_hex,omitempty"`
	Ncryptsec       st   `yaml:"ncryptsec,omitempty"`
	Nprofile        st   `yaml:"nprofile,omitempty"`
	Tag             []st `yaml:"tag,flow,omitempty"`
	Digest          st   `yaml:"digest,omitempty"`
	Signature       st   `yaml:"signature,omitempty"`
	Valid           *bo  `yaml:"valid,omitempty"`
	ConversationKey st   `yaml:"conversation_key,omitempty"`
}

func (o *output) write(w io.Writer, format st) (err er) {
	if format == "yaml" {
		enc := yaml.NewEncoder(w)
		if err = enc.Encode(o); chk.E(err) {
			return
		}
		return enc.Close()
	}
	lines := []struct{ name, value st }{
		{"NPUB", o.Npub},
		{"NSEC", o.Nsec},
		{"PUBLIC", o.PublicHex},
		{"SECRET", o.SecretHex},
		{"NCRYPTSEC", o.Ncryptsec},
		{"NPROFILE", o.Nprofile},
		{"DIGEST", o.Digest},
		{"SIGNATURE", o.Signature},
		{"CONVERSATION", o.ConversationKey},
	}
	if len(o.Tag) > 0 {
		lines = append(lines, struct{ name, value st }{"TAG", `["` + strings.Join(o.Tag, `","`) + `"]`})
	}
	if o.Valid != nil {
		lines = append(lines, struct{ name, value st }{"VALID", fmt.Sprint(*o.Valid)})
	}
	for _, l := range lines {
		if l.value == "" {
			continue
		}
		if _, err = fmt.Fprintf(w, "%s = %s\n", l.name, l.value); chk.E(err) {
			return
		}
	}
	return
}
