package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"identity.realy.lol/config"
	"identity.realy.lol/vanity"
)

type result struct {
	Nsec      st    `yaml:"nsec"`
	Npub      st    `yaml:"npub"`
	SecretHex st    `yaml:"secret_hex"`
	PublicHex st    `yaml:"public_hex"`
	Attempts  int64 `yaml:"attempts"`
}

func printResult(cfg *config.C, res *vanity.Result) (err er) {
	r := result{Npub: res.Npub, PublicHex: res.Keys.PublicKeyHex(), Attempts: res.Attempts}
	if r.Nsec, err = res.Keys.Nsec(); chk.E(err) {
		return
	}
	if r.SecretHex, err = res.Keys.SecretKeyHex(); chk.E(err) {
		return
	}
	if cfg.Format == "yaml" {
		enc := yaml.NewEncoder(os.Stdout)
		if err = enc.Encode(r); chk.E(err) {
			return
		}
		return enc.Close()
	}
	log.D.F("generated key pair:\n\nhex:\n\tsecret: %s\n\tpublic: %s\n",
		r.SecretHex, r.PublicHex)
	fmt.Printf("\nNSEC = %s\nNPUB = %s\n\n", r.Nsec, r.Npub)
	return
}
