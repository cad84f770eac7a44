// Command aes_trace encrypts a single block with AES-128 and prints the key, MixColumns output, and result of every
// round.
package main

import (
	stdaes "crypto/aes"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/jbw3/aes"
	"github.com/jbw3/aes/trace"
	"golang.org/x/sys/cpu"
)

func main() {
	var (
		keyHex = flag.String("key", "", "the 128-bit key, hex-encoded")
		ptHex  = flag.String("plaintext", "", "the 128-bit plaintext block, hex-encoded")
		verify = flag.Bool("verify", false, "check the result against crypto/aes")
	)
	flag.Parse()

	log := slog.New(slog.Default().Handler())

	key, err := aes.ParseKey(*keyHex)
	if err != nil {
		log.Error("invalid key", "err", err)
		os.Exit(2)
	}

	plaintext, err := aes.ParseBlock(*ptHex)
	if err != nil {
		log.Error("invalid plaintext", "err", err)
		os.Exit(2)
	}

	ciphertext, t := aes.EncryptTrace(key, plaintext)
	if err := trace.Write(os.Stdout, &t); err != nil {
		log.Error("error writing trace", "err", err)
		os.Exit(1)
	}
	fmt.Printf("\nCiphertext: %s\n", ciphertext)

	if *verify {
		if !check(log, key, plaintext, ciphertext) {
			os.Exit(1)
		}
	}
}

// check compares ciphertext with the output of crypto/aes, which uses the CPU's AES instructions when it has them.
func check(log *slog.Logger, key aes.Key, plaintext, ciphertext aes.Block) bool {
	hwAES := false
	switch runtime.GOARCH {
	case "amd64", "386":
		hwAES = cpu.X86.HasAES
	case "arm64":
		hwAES = cpu.ARM64.HasAES
	}

	ref, err := stdaes.NewCipher(key[:])
	if err != nil {
		log.Error("error creating reference cipher", "err", err)
		return false
	}
	var want aes.Block
	ref.Encrypt(want[:], plaintext[:])

	if want != ciphertext {
		log.Error("ciphertext mismatch", "got", ciphertext, "want", want, "hw_aes", hwAES)
		return false
	}
	log.Info("verified against crypto/aes", "ciphertext", ciphertext, "hw_aes", hwAES)
	return true
}
