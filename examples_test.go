package aes_test

import (
	"fmt"

	"github.com/jbw3/aes"
)

func ExampleEncryptBlock() {
	// The FIPS 197 Appendix C.1 example vector.
	key, err := aes.ParseKey("000102030405060708090a0b0c0d0e0f")
	if err != nil {
		panic(err)
	}
	plaintext, err := aes.ParseBlock("00112233445566778899aabbccddeeff")
	if err != nil {
		panic(err)
	}

	ciphertext, snapshots := aes.EncryptBlock(key, plaintext)
	fmt.Println(ciphertext)
	fmt.Println(len(snapshots), snapshots[0])
	// Output:
	// 69c4e0d86a7b0430d8cdb78070b4c55a
	// 9 5f72641557f5bc92f7be3b291db9f91a
}

func ExampleExpandKey() {
	key, err := aes.ParseKey("2b7e151628aed2a6abf7158809cf4f3c")
	if err != nil {
		panic(err)
	}

	schedule := aes.ExpandKey(key)
	fmt.Println(schedule.RoundKey(1))
	fmt.Println(schedule.RoundKey(aes.Rounds))
	// Output:
	// a0fafe1788542cb123a339392a6c7605
	// d014f9a8c9ee2589e13f0cc8b6630ca6
}

func ExampleCipher() {
	c, err := aes.NewCipher([]byte("yellow submarine"))
	if err != nil {
		panic(err)
	}

	block := make([]byte, aes.BlockSize)
	c.Encrypt(block, block)
	fmt.Printf("%x\n", block)

	_, err = aes.NewCipher([]byte("too short"))
	fmt.Println(err)
	// Output:
	// 247c56131f0ffcc8b8aced0a74fa740f
	// aes: invalid length: key is 9 bytes, want 16
}
