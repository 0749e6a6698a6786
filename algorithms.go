package pgpwire

import "fmt"

// PublicKeyAlgorithm is an OpenPGP public-key algorithm identifier.
// See RFC 4880, section 9.1.
type PublicKeyAlgorithm uint8

const (
	PubKeyAlgoRSA            PublicKeyAlgorithm = 1
	PubKeyAlgoRSAEncryptOnly PublicKeyAlgorithm = 2
	PubKeyAlgoRSASignOnly    PublicKeyAlgorithm = 3
	PubKeyAlgoElGamal        PublicKeyAlgorithm = 16
	PubKeyAlgoDSA            PublicKeyAlgorithm = 17
	PubKeyAlgoECDH           PublicKeyAlgorithm = 18
	PubKeyAlgoECDSA          PublicKeyAlgorithm = 19
	PubKeyAlgoEdDSA          PublicKeyAlgorithm = 22
)

func (a PublicKeyAlgorithm) String() string {
	switch a {
	case PubKeyAlgoRSA:
		return "RSA"
	case PubKeyAlgoRSAEncryptOnly:
		return "RSA (encrypt only)"
	case PubKeyAlgoRSASignOnly:
		return "RSA (sign only)"
	case PubKeyAlgoElGamal:
		return "ElGamal"
	case PubKeyAlgoDSA:
		return "DSA"
	case PubKeyAlgoECDH:
		return "ECDH"
	case PubKeyAlgoECDSA:
		return "ECDSA"
	case PubKeyAlgoEdDSA:
		return "EdDSA"
	}
	return fmt.Sprintf("PublicKeyAlgorithm(%d)", uint8(a))
}

// HashAlgorithm is an OpenPGP hash algorithm identifier.
// See RFC 4880, section 9.4.
type HashAlgorithm uint8

const (
	HashAlgoMD5       HashAlgorithm = 1
	HashAlgoSHA1      HashAlgorithm = 2
	HashAlgoRIPEMD160 HashAlgorithm = 3
	HashAlgoSHA256    HashAlgorithm = 8
	HashAlgoSHA384    HashAlgorithm = 9
	HashAlgoSHA512    HashAlgorithm = 10
	HashAlgoSHA224    HashAlgorithm = 11
)

func (a HashAlgorithm) String() string {
	switch a {
	case HashAlgoMD5:
		return "MD5"
	case HashAlgoSHA1:
		return "SHA1"
	case HashAlgoRIPEMD160:
		return "RIPEMD160"
	case HashAlgoSHA256:
		return "SHA256"
	case HashAlgoSHA384:
		return "SHA384"
	case HashAlgoSHA512:
		return "SHA512"
	case HashAlgoSHA224:
		return "SHA224"
	}
	return fmt.Sprintf("HashAlgorithm(%d)", uint8(a))
}

// SymmetricAlgorithm is an OpenPGP symmetric-key algorithm identifier.
// See RFC 4880, section 9.2.
type SymmetricAlgorithm uint8

const (
	SymAlgoPlaintext SymmetricAlgorithm = 0
	SymAlgoIDEA      SymmetricAlgorithm = 1
	SymAlgoTripleDES SymmetricAlgorithm = 2
	SymAlgoCAST5     SymmetricAlgorithm = 3
	SymAlgoBlowfish  SymmetricAlgorithm = 4
	SymAlgoAES128    SymmetricAlgorithm = 7
	SymAlgoAES192    SymmetricAlgorithm = 8
	SymAlgoAES256    SymmetricAlgorithm = 9
	SymAlgoTwofish   SymmetricAlgorithm = 10
)

func (a SymmetricAlgorithm) String() string {
	switch a {
	case SymAlgoPlaintext:
		return "plaintext"
	case SymAlgoIDEA:
		return "IDEA"
	case SymAlgoTripleDES:
		return "3DES"
	case SymAlgoCAST5:
		return "CAST5"
	case SymAlgoBlowfish:
		return "Blowfish"
	case SymAlgoAES128:
		return "AES-128"
	case SymAlgoAES192:
		return "AES-192"
	case SymAlgoAES256:
		return "AES-256"
	case SymAlgoTwofish:
		return "Twofish"
	}
	return fmt.Sprintf("SymmetricAlgorithm(%d)", uint8(a))
}

// CompressionAlgorithm is an OpenPGP compression algorithm identifier.
// See RFC 4880, section 9.3.
type CompressionAlgorithm uint8

const (
	CompressionNone  CompressionAlgorithm = 0
	CompressionZIP   CompressionAlgorithm = 1
	CompressionZLIB  CompressionAlgorithm = 2
	CompressionBZip2 CompressionAlgorithm = 3
)

func (a CompressionAlgorithm) String() string {
	switch a {
	case CompressionNone:
		return "uncompressed"
	case CompressionZIP:
		return "ZIP"
	case CompressionZLIB:
		return "ZLIB"
	case CompressionBZip2:
		return "BZip2"
	}
	return fmt.Sprintf("CompressionAlgorithm(%d)", uint8(a))
}
