// Command cryptokit encrypts, decrypts and generates keys and random strings
// from the command line.
//
// Usage:
//
//	cryptokit keygen
//	cryptokit random <length> [numeric|lower|upper|symbol|hex|alphanum|printable|password]
//	cryptokit encrypt < plaintext > token
//	cryptokit decrypt < token > plaintext
//	cryptokit derive <info>
//	cryptokit passphrase [salt-hex] < passphrase
//
// The key, token format, algorithm and log level come from CRYPTOKIT_KEY,
// CRYPTOKIT_FORMAT, CRYPTOKIT_ALGORITHM and CRYPTOKIT_LOG_LEVEL, or from a
// .env file in the working directory.
package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/vaultsandbox/cryptokit"
	"github.com/vaultsandbox/cryptokit/internal/crypto"
)

const usage = `usage: cryptokit <command> [args]

commands:
  keygen                      print a new key
  random <length> [keyspace]  print a random string
  encrypt                     encrypt stdin with CRYPTOKIT_KEY
  decrypt                     decrypt stdin with CRYPTOKIT_KEY
  derive <info>               print a subkey of CRYPTOKIT_KEY
  passphrase [salt-hex]       derive a key from the passphrase on stdin`

var (
	errUsage      = errors.New(usage)
	errMissingKey = errors.New("CRYPTOKIT_KEY is not set")
)

var keyspaces = map[string]string{
	"numeric":   cryptokit.Numeric,
	"lower":     cryptokit.ASCIILower,
	"upper":     cryptokit.ASCIIUpper,
	"symbol":    cryptokit.ASCIISymbol,
	"hex":       cryptokit.Hexadecimal,
	"alphanum":  cryptokit.ASCIIAlphanum,
	"printable": cryptokit.ASCIIPrintable,
	"password":  cryptokit.ASCIICommonPassword,
}

// app carries the state shared by all commands.
type app struct {
	cfg      Config
	settings Settings
	cipher   *cryptokit.Cipher
	logger   *slog.Logger
}

func run(args []string, cfg Config) error {
	if len(args) < 2 {
		return errUsage
	}

	switch args[1] {
	case "help", "-h", "--help":
		_, err := fmt.Fprintln(cfg.Stdout, usage)
		return err
	}

	settings, err := loadSettings(cfg.Environ, cfg.EnvFile)
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.Stderr, settings.LogLevel)
	if err != nil {
		return err
	}

	format, err := cryptokit.ParseFormat(settings.Format)
	if err != nil {
		return fmt.Errorf("CRYPTOKIT_FORMAT: %w", err)
	}
	algorithm, err := cryptokit.ParseAlgorithm(settings.Algorithm)
	if err != nil {
		return fmt.Errorf("CRYPTOKIT_ALGORITHM: %w", err)
	}

	c, err := cryptokit.New(cryptokit.WithFormat(format), cryptokit.WithAlgorithm(algorithm))
	if err != nil {
		return err
	}

	a := &app{cfg: cfg, settings: settings, cipher: c, logger: logger}
	cmd, rest := args[1], args[2:]

	logger.Debug("running command",
		"command", cmd,
		"format", format.String(),
		"algorithm", string(algorithm),
		"key_set", settings.Key != "",
	)

	switch cmd {
	case "keygen":
		return a.keygen()
	case "random":
		return a.random(rest)
	case "encrypt":
		return a.encrypt()
	case "decrypt":
		return a.decrypt()
	case "derive":
		return a.derive(rest)
	case "passphrase":
		return a.passphrase(rest)
	default:
		return fmt.Errorf("unknown command: %s", cmd)
	}
}

func (a *app) keygen() error {
	key, err := cryptokit.GenerateKey()
	if err != nil {
		return fmt.Errorf("generate key: %w", err)
	}
	_, err = fmt.Fprintln(a.cfg.Stdout, key)
	return err
}

func (a *app) random(args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return errors.New("usage: cryptokit random <length> [keyspace]")
	}

	length, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid length %q: %w", args[0], err)
	}

	keyspace := cryptokit.DefaultKeyspace
	if len(args) == 2 {
		ks, ok := keyspaces[strings.ToLower(args[1])]
		if !ok {
			return fmt.Errorf("unknown keyspace: %s", args[1])
		}
		keyspace = ks
	}

	s, err := cryptokit.RandomString(length, keyspace)
	if err != nil {
		return fmt.Errorf("random string: %w", err)
	}

	a.logger.Info("generated random string", "length", length, "keyspace_size", len(keyspace))
	_, err = fmt.Fprintln(a.cfg.Stdout, s)
	return err
}

func (a *app) encrypt() error {
	if a.settings.Key == "" {
		return errMissingKey
	}

	plaintext, err := io.ReadAll(a.cfg.Stdin)
	if err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}
	defer crypto.Wipe(plaintext)

	token, err := a.cipher.Encrypt(plaintext, a.settings.Key)
	if err != nil {
		return fmt.Errorf("encrypt: %w", err)
	}

	a.logger.Info("encrypted", "plaintext_bytes", len(plaintext), "token_bytes", len(token))

	if a.cipher.Format() != cryptokit.FormatBinary {
		token = append(token, '\n')
	}
	_, err = a.cfg.Stdout.Write(token)
	return err
}

func (a *app) decrypt() error {
	if a.settings.Key == "" {
		return errMissingKey
	}

	token, err := io.ReadAll(a.cfg.Stdin)
	if err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}
	if a.cipher.Format() != cryptokit.FormatBinary {
		token = bytes.TrimSpace(token)
	}

	plaintext, err := a.cipher.Decrypt(token, a.settings.Key)
	if err != nil {
		a.logger.Warn("decryption rejected", "token_bytes", len(token), "error", err)
		return fmt.Errorf("decrypt: %w", err)
	}
	defer crypto.Wipe(plaintext)

	a.logger.Info("decrypted", "token_bytes", len(token), "plaintext_bytes", len(plaintext))
	_, err = a.cfg.Stdout.Write(plaintext)
	return err
}

func (a *app) derive(args []string) error {
	if len(args) != 1 {
		return errors.New("usage: cryptokit derive <info>")
	}
	if a.settings.Key == "" {
		return errMissingKey
	}

	key, err := cryptokit.DeriveKey(a.settings.Key, args[0])
	if err != nil {
		return fmt.Errorf("derive key: %w", err)
	}
	_, err = fmt.Fprintln(a.cfg.Stdout, key)
	return err
}

// PassphraseOutput is the JSON written by the passphrase command.
type PassphraseOutput struct {
	Salt string `json:"salt"`
	Key  string `json:"key"`
}

func (a *app) passphrase(args []string) error {
	if len(args) > 1 {
		return errors.New("usage: cryptokit passphrase [salt-hex]")
	}

	var salt []byte
	var err error
	if len(args) == 1 {
		salt, err = crypto.DecodeHex([]byte(args[0]))
		if err != nil {
			return fmt.Errorf("invalid salt: %w", err)
		}
	} else {
		salt, err = cryptokit.GenerateSalt()
		if err != nil {
			return fmt.Errorf("generate salt: %w", err)
		}
	}

	input, err := io.ReadAll(a.cfg.Stdin)
	if err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}
	defer crypto.Wipe(input)

	pass := bytes.TrimRight(input, "\r\n")
	key, err := cryptokit.KeyFromPassphrase(string(pass), salt)
	if err != nil {
		return fmt.Errorf("key from passphrase: %w", err)
	}

	return json.NewEncoder(a.cfg.Stdout).Encode(PassphraseOutput{
		Salt: string(crypto.EncodeHex(salt)),
		Key:  key,
	})
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
