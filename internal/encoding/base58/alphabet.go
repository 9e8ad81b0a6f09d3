package base58

import trbase58 "github.com/mr-tron/base58"

// Alphabet is the Bitcoin Base58 alphabet: digits and letters without the
// visually ambiguous 0, O, I and l.
const Alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

var btcAlphabet = trbase58.NewAlphabet(Alphabet)
