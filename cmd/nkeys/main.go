// Package main is nkeys, a tool for nostr identities: it generates keys,
// converts between hex, npub/nsec and ncryptsec forms, signs and verifies with
// BIP-340 Schnorr signatures and builds nprofile pointers and contact tags.
package main

import (
	"io"
	"os"

	"github.com/alexflint/go-arg"

	"identity.realy.lol/config"
)

type GenerateCmd struct {
	Encrypt  bo `help:"also export the secret key as an ncryptsec under --password"`
	Password st `arg:"--password,env:NKEYS_PASSWORD" help:"password for the ncryptsec"`
}

type ConvertCmd struct {
	Key      st `arg:"positional,required" help:"a key as hex, npub, nsec or ncryptsec"`
	Secret   bo `help:"read a hex KEY as a secret key rather than a public key"`
	Password st `arg:"--password,env:NKEYS_PASSWORD" help:"password to decrypt an ncryptsec"`
}

type SignCmd struct {
	Secret  st `arg:"--sec,required,env:NOSTR_SECRET_KEY" help:"secret key as hex or nsec"`
	Message st `arg:"positional,required" help:"32 byte hex digest, or text with --text"`
	Text    bo `help:"hash MESSAGE with SHA-256 and sign the digest"`
}

type VerifyCmd struct {
	Pub       st `arg:"positional,required" help:"public key as hex or npub"`
	Signature st `arg:"positional,required" help:"64 byte hex signature"`
	Message   st `arg:"positional,required" help:"32 byte hex digest, or text with --text"`
	Text      bo `help:"hash MESSAGE with SHA-256 and verify against the digest"`
}

type EncryptCmd struct {
	Secret   st `arg:"positional,required" help:"secret key as hex or nsec"`
	Password st `arg:"--password,required,env:NKEYS_PASSWORD" help:"password to encrypt with"`
}

type DecryptCmd struct {
	Ncryptsec st `arg:"positional,required" help:"encrypted secret key"`
	Password  st `arg:"--password,required,env:NKEYS_PASSWORD" help:"password to decrypt with"`
}

type NprofileCmd struct {
	Pub    st   `arg:"positional,required" help:"public key as hex, npub or nprofile"`
	Relays []st `arg:"--relay,separate" help:"relay hint, may be repeated"`
	Alias  st   `help:"petname for the contact tag"`
}

type ConversationCmd struct {
	Secret st `arg:"--sec,required,env:NOSTR_SECRET_KEY" help:"secret key as hex or nsec"`
	Peer   st `arg:"positional,required" help:"peer public key as hex or npub"`
}

type Args struct {
	Generate     *GenerateCmd     `arg:"subcommand:generate" help:"generate a new identity"`
	Convert      *ConvertCmd      `arg:"subcommand:convert" help:"show every form of a key"`
	Sign         *SignCmd         `arg:"subcommand:sign" help:"sign a digest or text"`
	Verify       *VerifyCmd       `arg:"subcommand:verify" help:"verify a signature"`
	Encrypt      *EncryptCmd      `arg:"subcommand:encrypt" help:"encrypt a secret key to an ncryptsec"`
	Decrypt      *DecryptCmd      `arg:"subcommand:decrypt" help:"decrypt an ncryptsec"`
	Nprofile     *NprofileCmd     `arg:"subcommand:nprofile" help:"build an nprofile and contact tag"`
	Conversation *ConversationCmd `arg:"subcommand:conversation" help:"derive the NIP-44 conversation key with a peer"`
	Format       st               `help:"output format: text or yaml, defaults to FORMAT"`
}

func (Args) Description() st {
	return "nkeys works with nostr identities. Run 'nkeys help' for the environment variables."
}

func main() {
	cfg, err := config.New("nkeys")
	if chk.F(err) {
		os.Exit(1)
	}
	if cfg.HandlePseudoCommands(os.Args, os.Stdout) {
		os.Exit(0)
	}
	var args Args
	p := arg.MustParse(&args)
	if p.Subcommand() == nil {
		p.WriteHelp(os.Stderr)
		os.Exit(1)
	}
	if args.Format != "" {
		cfg.Format = args.Format
		if err = cfg.Validate(); chk.F(err) {
			os.Exit(1)
		}
	}
	if err = run(cfg, &args, os.Stdout); err != nil {
		log.F.F("%s", err)
		os.Exit(1)
	}
}

// run executes the chosen subcommand and writes its result to w.
func run(cfg *config.C, args *Args, w io.Writer) (err er) {
	var out *output
	switch {
	case args.Generate != nil:
		out, err = generate(cfg, args.Generate)
	case args.Convert != nil:
		out, err = convert(args.Convert)
	case args.Sign != nil:
		out, err = sign(args.Sign)
	case args.Verify != nil:
		out, err = verify(args.Verify)
	case args.Encrypt != nil:
		out, err = encrypt(cfg, args.Encrypt)
	case args.Decrypt != nil:
		out, err = decrypt(args.Decrypt)
	case args.Nprofile != nil:
		out, err = nprofile(args.Nprofile)
	case args.Conversation != nil:
		out, err = conversation(args.Conversation)
	default:
		err = errorf.E("no command given")
	}
	if err != nil {
		return
	}
	return out.write(w, cfg.Format)
}
