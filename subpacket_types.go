package pgpwire

import (
	"fmt"

	"github.com/pgpkit/pgpwire/internal/cursor"
)

// Per-type body maxima. Flag-byte sequences are bounded tightly; free-text
// fields get a generous but finite cap so a hostile subpacket cannot claim
// an absurd length for a field that is ultimately a short string.
const (
	MaxKeyFlagsLength             = 32
	MaxFeaturesLength             = 32
	MaxKeyServerPreferencesLength = 32
	MaxPreferredAlgorithmsLength  = 64
	MaxRegularExpressionLength    = 1 << 14
	MaxURILength                  = 1 << 14
	MaxUserIDLength               = 1 << 14
	MaxRevocationReasonLength     = 1 << 14
)

// Key flag bits carried by a key flags subpacket. See RFC 4880,
// section 5.2.3.21.
const (
	KeyFlagCertify               = 0x01
	KeyFlagSign                  = 0x02
	KeyFlagEncryptCommunications = 0x04
	KeyFlagEncryptStorage        = 0x08
	KeyFlagSplitKey              = 0x10
	KeyFlagAuthenticate          = 0x20
	KeyFlagGroupKey              = 0x80
)

// FeatureModificationDetection is the MDC feature bit in a features
// subpacket. See RFC 4880, section 5.2.3.24.
const FeatureModificationDetection = 0x01

// fingerprintV4Size is the length of a version 4 key fingerprint.
const fingerprintV4Size = 20

// SignatureCreationTimeSubpacket records when the signature was made,
// type 2.
type SignatureCreationTimeSubpacket struct {
	Critical bool
	// Time is seconds since the epoch.
	Time uint32
}

func parseCreationTime(in *cursor.Cursor, critical bool) (SignatureSubpacket, error) {
	t, err := in.Uint32()
	if err != nil {
		return nil, wrapBounds(err)
	}
	if in.Remaining() != 0 {
		return nil, trailing(in.Position(), in.Remaining())
	}
	return &SignatureCreationTimeSubpacket{Critical: critical, Time: t}, nil
}

func (s *SignatureCreationTimeSubpacket) Type() SubpacketType { return SubpacketCreationTime }
func (s *SignatureCreationTimeSubpacket) IsCritical() bool    { return s.Critical }

func (s *SignatureCreationTimeSubpacket) appendBody(dst []byte) ([]byte, error) {
	return appendUint32(dst, s.Time), nil
}

// SignatureExpirationTimeSubpacket gives the signature's validity period,
// type 3. Zero means the signature never expires.
type SignatureExpirationTimeSubpacket struct {
	Critical bool
	// Seconds counts from the signature creation time.
	Seconds uint32
}

func parseSignatureExpirationTime(in *cursor.Cursor, critical bool) (SignatureSubpacket, error) {
	n, err := in.Uint32()
	if err != nil {
		return nil, wrapBounds(err)
	}
	if in.Remaining() != 0 {
		return nil, trailing(in.Position(), in.Remaining())
	}
	return &SignatureExpirationTimeSubpacket{Critical: critical, Seconds: n}, nil
}

func (s *SignatureExpirationTimeSubpacket) Type() SubpacketType {
	return SubpacketSignatureExpirationTime
}
func (s *SignatureExpirationTimeSubpacket) IsCritical() bool { return s.Critical }

func (s *SignatureExpirationTimeSubpacket) appendBody(dst []byte) ([]byte, error) {
	return appendUint32(dst, s.Seconds), nil
}

// KeyExpirationTimeSubpacket gives the key's validity period, type 9.
// Zero means the key never expires.
type KeyExpirationTimeSubpacket struct {
	Critical bool
	// Seconds counts from the key creation time.
	Seconds uint32
}

func parseKeyExpirationTime(in *cursor.Cursor, critical bool) (SignatureSubpacket, error) {
	n, err := in.Uint32()
	if err != nil {
		return nil, wrapBounds(err)
	}
	if in.Remaining() != 0 {
		return nil, trailing(in.Position(), in.Remaining())
	}
	return &KeyExpirationTimeSubpacket{Critical: critical, Seconds: n}, nil
}

func (s *KeyExpirationTimeSubpacket) Type() SubpacketType { return SubpacketKeyExpirationTime }
func (s *KeyExpirationTimeSubpacket) IsCritical() bool    { return s.Critical }

func (s *KeyExpirationTimeSubpacket) appendBody(dst []byte) ([]byte, error) {
	return appendUint32(dst, s.Seconds), nil
}

// ExportableCertificationSubpacket marks a certification as local-only
// when its octet is zero, type 4. The raw octet is kept so nonstandard
// values round-trip.
type ExportableCertificationSubpacket struct {
	Critical bool
	Value    byte
}

func parseExportableCertification(in *cursor.Cursor, critical bool) (SignatureSubpacket, error) {
	v, err := in.Byte()
	if err != nil {
		return nil, wrapBounds(err)
	}
	if in.Remaining() != 0 {
		return nil, trailing(in.Position(), in.Remaining())
	}
	return &ExportableCertificationSubpacket{Critical: critical, Value: v}, nil
}

func (s *ExportableCertificationSubpacket) Type() SubpacketType {
	return SubpacketExportableCertification
}
func (s *ExportableCertificationSubpacket) IsCritical() bool { return s.Critical }

// Exportable reports whether the certification may be exported.
func (s *ExportableCertificationSubpacket) Exportable() bool { return s.Value != 0 }

func (s *ExportableCertificationSubpacket) appendBody(dst []byte) ([]byte, error) {
	return append(dst, s.Value), nil
}

// RevocableSubpacket marks a signature as irrevocable when its octet is
// zero, type 7.
type RevocableSubpacket struct {
	Critical bool
	Value    byte
}

func parseRevocable(in *cursor.Cursor, critical bool) (SignatureSubpacket, error) {
	v, err := in.Byte()
	if err != nil {
		return nil, wrapBounds(err)
	}
	if in.Remaining() != 0 {
		return nil, trailing(in.Position(), in.Remaining())
	}
	return &RevocableSubpacket{Critical: critical, Value: v}, nil
}

func (s *RevocableSubpacket) Type() SubpacketType { return SubpacketRevocable }
func (s *RevocableSubpacket) IsCritical() bool    { return s.Critical }

// Revocable reports whether the signature may later be revoked.
func (s *RevocableSubpacket) Revocable() bool { return s.Value != 0 }

func (s *RevocableSubpacket) appendBody(dst []byte) ([]byte, error) {
	return append(dst, s.Value), nil
}

// PrimaryUserIDSubpacket flags the certified user ID as the key's primary
// one when its octet is nonzero, type 25.
type PrimaryUserIDSubpacket struct {
	Critical bool
	Value    byte
}

func parsePrimaryUserID(in *cursor.Cursor, critical bool) (SignatureSubpacket, error) {
	v, err := in.Byte()
	if err != nil {
		return nil, wrapBounds(err)
	}
	if in.Remaining() != 0 {
		return nil, trailing(in.Position(), in.Remaining())
	}
	return &PrimaryUserIDSubpacket{Critical: critical, Value: v}, nil
}

func (s *PrimaryUserIDSubpacket) Type() SubpacketType { return SubpacketPrimaryUserID }
func (s *PrimaryUserIDSubpacket) IsCritical() bool    { return s.Critical }

// Primary reports whether the user ID is flagged primary.
func (s *PrimaryUserIDSubpacket) Primary() bool { return s.Value != 0 }

func (s *PrimaryUserIDSubpacket) appendBody(dst []byte) ([]byte, error) {
	return append(dst, s.Value), nil
}

// TrustSignatureSubpacket carries the trust depth and amount of a trust
// signature, type 5. The codec only transports the two octets; their
// meaning belongs to the trust engine.
type TrustSignatureSubpacket struct {
	Critical bool
	Depth    byte
	Amount   byte
}

func parseTrustSignature(in *cursor.Cursor, critical bool) (SignatureSubpacket, error) {
	b, err := in.Take(2)
	if err != nil {
		return nil, wrapBounds(err)
	}
	if in.Remaining() != 0 {
		return nil, trailing(in.Position(), in.Remaining())
	}
	return &TrustSignatureSubpacket{Critical: critical, Depth: b[0], Amount: b[1]}, nil
}

func (s *TrustSignatureSubpacket) Type() SubpacketType { return SubpacketTrustSignature }
func (s *TrustSignatureSubpacket) IsCritical() bool    { return s.Critical }

func (s *TrustSignatureSubpacket) appendBody(dst []byte) ([]byte, error) {
	return append(dst, s.Depth, s.Amount), nil
}

// RegularExpressionSubpacket scopes a trust signature to user IDs matching
// the expression, type 6. The bytes are kept raw, including the customary
// trailing NUL.
type RegularExpressionSubpacket struct {
	Critical   bool
	Expression string
}

func parseRegularExpression(in *cursor.Cursor, critical bool) (SignatureSubpacket, error) {
	if in.Remaining() > MaxRegularExpressionLength {
		return nil, tooLong(in.Position(), in.Remaining(), MaxRegularExpressionLength)
	}
	return &RegularExpressionSubpacket{Critical: critical, Expression: string(in.Rest())}, nil
}

func (s *RegularExpressionSubpacket) Type() SubpacketType { return SubpacketRegularExpression }
func (s *RegularExpressionSubpacket) IsCritical() bool    { return s.Critical }

func (s *RegularExpressionSubpacket) appendBody(dst []byte) ([]byte, error) {
	return append(dst, s.Expression...), nil
}

// RevocationKeySubpacket authorizes another key to issue revocations,
// type 12. See RFC 4880, section 5.2.3.15.
type RevocationKeySubpacket struct {
	Critical bool
	// Class is the class octet; bit 0x80 must be set, 0x40 marks the
	// authorization sensitive.
	Class     byte
	Algorithm PublicKeyAlgorithm
	// Fingerprint is the v4 fingerprint of the authorized key.
	Fingerprint [fingerprintV4Size]byte
}

func parseRevocationKey(in *cursor.Cursor, critical bool) (SignatureSubpacket, error) {
	class, err := in.Byte()
	if err != nil {
		return nil, wrapBounds(err)
	}
	algo, err := in.Byte()
	if err != nil {
		return nil, wrapBounds(err)
	}
	fpr, err := in.Take(fingerprintV4Size)
	if err != nil {
		return nil, wrapBounds(err)
	}
	if in.Remaining() != 0 {
		return nil, trailing(in.Position(), in.Remaining())
	}
	s := &RevocationKeySubpacket{
		Critical:  critical,
		Class:     class,
		Algorithm: PublicKeyAlgorithm(algo),
	}
	copy(s.Fingerprint[:], fpr)
	return s, nil
}

func (s *RevocationKeySubpacket) Type() SubpacketType { return SubpacketRevocationKey }
func (s *RevocationKeySubpacket) IsCritical() bool    { return s.Critical }

func (s *RevocationKeySubpacket) appendBody(dst []byte) ([]byte, error) {
	dst = append(dst, s.Class, byte(s.Algorithm))
	return append(dst, s.Fingerprint[:]...), nil
}

// IssuerSubpacket names the signing key by its 8-octet key ID, type 16.
type IssuerSubpacket struct {
	Critical bool
	KeyID    [8]byte
}

func parseIssuer(in *cursor.Cursor, critical bool) (SignatureSubpacket, error) {
	b, err := in.Take(8)
	if err != nil {
		return nil, wrapBounds(err)
	}
	if in.Remaining() != 0 {
		return nil, trailing(in.Position(), in.Remaining())
	}
	s := &IssuerSubpacket{Critical: critical}
	copy(s.KeyID[:], b)
	return s, nil
}

func (s *IssuerSubpacket) Type() SubpacketType { return SubpacketIssuer }
func (s *IssuerSubpacket) IsCritical() bool    { return s.Critical }

func (s *IssuerSubpacket) appendBody(dst []byte) ([]byte, error) {
	return append(dst, s.KeyID[:]...), nil
}

// NotationDataSubpacket carries a name-value annotation, type 20.
// See RFC 4880, section 5.2.3.16.
type NotationDataSubpacket struct {
	Critical bool
	// Flags is the four-octet flags field; 0x80 in the first octet marks
	// the value as human-readable.
	Flags [4]byte
	Name  []byte
	Value []byte
}

func parseNotationData(in *cursor.Cursor, critical bool) (SignatureSubpacket, error) {
	flags, err := in.Take(4)
	if err != nil {
		return nil, wrapBounds(err)
	}
	nameLen, err := in.Uint16()
	if err != nil {
		return nil, wrapBounds(err)
	}
	valueLen, err := in.Uint16()
	if err != nil {
		return nil, wrapBounds(err)
	}
	name, err := in.Take(int(nameLen))
	if err != nil {
		return nil, wrapBounds(err)
	}
	value, err := in.Take(int(valueLen))
	if err != nil {
		return nil, wrapBounds(err)
	}
	if in.Remaining() != 0 {
		return nil, trailing(in.Position(), in.Remaining())
	}
	s := &NotationDataSubpacket{Critical: critical, Name: name, Value: value}
	copy(s.Flags[:], flags)
	return s, nil
}

func (s *NotationDataSubpacket) Type() SubpacketType { return SubpacketNotationData }
func (s *NotationDataSubpacket) IsCritical() bool    { return s.Critical }

// HumanReadable reports whether the notation value is flagged as text.
func (s *NotationDataSubpacket) HumanReadable() bool { return s.Flags[0]&0x80 != 0 }

func (s *NotationDataSubpacket) appendBody(dst []byte) ([]byte, error) {
	dst = append(dst, s.Flags[:]...)
	dst = append(dst, byte(len(s.Name)>>8), byte(len(s.Name)))
	dst = append(dst, byte(len(s.Value)>>8), byte(len(s.Value)))
	dst = append(dst, s.Name...)
	return append(dst, s.Value...), nil
}

// PreferredSymmetricAlgorithmsSubpacket lists cipher preferences in
// decreasing order, type 11.
type PreferredSymmetricAlgorithmsSubpacket struct {
	Critical   bool
	Algorithms []byte
}

func parsePreferredSymmetric(in *cursor.Cursor, critical bool) (SignatureSubpacket, error) {
	if in.Remaining() > MaxPreferredAlgorithmsLength {
		return nil, tooLong(in.Position(), in.Remaining(), MaxPreferredAlgorithmsLength)
	}
	return &PreferredSymmetricAlgorithmsSubpacket{Critical: critical, Algorithms: in.Rest()}, nil
}

func (s *PreferredSymmetricAlgorithmsSubpacket) Type() SubpacketType {
	return SubpacketPreferredSymmetric
}
func (s *PreferredSymmetricAlgorithmsSubpacket) IsCritical() bool { return s.Critical }

func (s *PreferredSymmetricAlgorithmsSubpacket) appendBody(dst []byte) ([]byte, error) {
	return append(dst, s.Algorithms...), nil
}

// PreferredHashAlgorithmsSubpacket lists hash preferences in decreasing
// order, type 21.
type PreferredHashAlgorithmsSubpacket struct {
	Critical   bool
	Algorithms []byte
}

func parsePreferredHash(in *cursor.Cursor, critical bool) (SignatureSubpacket, error) {
	if in.Remaining() > MaxPreferredAlgorithmsLength {
		return nil, tooLong(in.Position(), in.Remaining(), MaxPreferredAlgorithmsLength)
	}
	return &PreferredHashAlgorithmsSubpacket{Critical: critical, Algorithms: in.Rest()}, nil
}

func (s *PreferredHashAlgorithmsSubpacket) Type() SubpacketType { return SubpacketPreferredHash }
func (s *PreferredHashAlgorithmsSubpacket) IsCritical() bool    { return s.Critical }

func (s *PreferredHashAlgorithmsSubpacket) appendBody(dst []byte) ([]byte, error) {
	return append(dst, s.Algorithms...), nil
}

// PreferredCompressionAlgorithmsSubpacket lists compression preferences in
// decreasing order, type 22.
type PreferredCompressionAlgorithmsSubpacket struct {
	Critical   bool
	Algorithms []byte
}

func parsePreferredCompression(in *cursor.Cursor, critical bool) (SignatureSubpacket, error) {
	if in.Remaining() > MaxPreferredAlgorithmsLength {
		return nil, tooLong(in.Position(), in.Remaining(), MaxPreferredAlgorithmsLength)
	}
	return &PreferredCompressionAlgorithmsSubpacket{Critical: critical, Algorithms: in.Rest()}, nil
}

func (s *PreferredCompressionAlgorithmsSubpacket) Type() SubpacketType {
	return SubpacketPreferredCompression
}
func (s *PreferredCompressionAlgorithmsSubpacket) IsCritical() bool { return s.Critical }

func (s *PreferredCompressionAlgorithmsSubpacket) appendBody(dst []byte) ([]byte, error) {
	return append(dst, s.Algorithms...), nil
}

// KeyServerPreferencesSubpacket carries key server handling flags,
// type 23.
type KeyServerPreferencesSubpacket struct {
	Critical bool
	Flags    []byte
}

func parseKeyServerPreferences(in *cursor.Cursor, critical bool) (SignatureSubpacket, error) {
	if in.Remaining() > MaxKeyServerPreferencesLength {
		return nil, tooLong(in.Position(), in.Remaining(), MaxKeyServerPreferencesLength)
	}
	return &KeyServerPreferencesSubpacket{Critical: critical, Flags: in.Rest()}, nil
}

func (s *KeyServerPreferencesSubpacket) Type() SubpacketType { return SubpacketKeyServerPreferences }
func (s *KeyServerPreferencesSubpacket) IsCritical() bool    { return s.Critical }

func (s *KeyServerPreferencesSubpacket) appendBody(dst []byte) ([]byte, error) {
	return append(dst, s.Flags...), nil
}

// PreferredKeyServerSubpacket names the key holder's preferred key server,
// type 24.
type PreferredKeyServerSubpacket struct {
	Critical bool
	URI      string
}

func parsePreferredKeyServer(in *cursor.Cursor, critical bool) (SignatureSubpacket, error) {
	if in.Remaining() > MaxURILength {
		return nil, tooLong(in.Position(), in.Remaining(), MaxURILength)
	}
	return &PreferredKeyServerSubpacket{Critical: critical, URI: string(in.Rest())}, nil
}

func (s *PreferredKeyServerSubpacket) Type() SubpacketType { return SubpacketPreferredKeyServer }
func (s *PreferredKeyServerSubpacket) IsCritical() bool    { return s.Critical }

func (s *PreferredKeyServerSubpacket) appendBody(dst []byte) ([]byte, error) {
	return append(dst, s.URI...), nil
}

// PolicyURISubpacket points at the policy the signature was issued under,
// type 26.
type PolicyURISubpacket struct {
	Critical bool
	URI      string
}

func parsePolicyURI(in *cursor.Cursor, critical bool) (SignatureSubpacket, error) {
	if in.Remaining() > MaxURILength {
		return nil, tooLong(in.Position(), in.Remaining(), MaxURILength)
	}
	return &PolicyURISubpacket{Critical: critical, URI: string(in.Rest())}, nil
}

func (s *PolicyURISubpacket) Type() SubpacketType { return SubpacketPolicyURI }
func (s *PolicyURISubpacket) IsCritical() bool    { return s.Critical }

func (s *PolicyURISubpacket) appendBody(dst []byte) ([]byte, error) {
	return append(dst, s.URI...), nil
}

// KeyFlagsSubpacket holds the key's capability flags, type 27. The first
// octet carries the KeyFlag* bits; later octets are reserved but preserved.
type KeyFlagsSubpacket struct {
	Critical bool
	Flags    []byte
}

func parseKeyFlags(in *cursor.Cursor, critical bool) (SignatureSubpacket, error) {
	if in.Remaining() > MaxKeyFlagsLength {
		return nil, tooLong(in.Position(), in.Remaining(), MaxKeyFlagsLength)
	}
	return &KeyFlagsSubpacket{Critical: critical, Flags: in.Rest()}, nil
}

func (s *KeyFlagsSubpacket) Type() SubpacketType { return SubpacketKeyFlags }
func (s *KeyFlagsSubpacket) IsCritical() bool    { return s.Critical }

// Has reports whether all bits in mask are set in the first flag octet.
func (s *KeyFlagsSubpacket) Has(mask byte) bool {
	return len(s.Flags) > 0 && s.Flags[0]&mask == mask
}

func (s *KeyFlagsSubpacket) appendBody(dst []byte) ([]byte, error) {
	if len(s.Flags) > MaxKeyFlagsLength {
		return nil, fmt.Errorf("pgpwire: key flags subpacket is %d bytes, maximum is %d", len(s.Flags), MaxKeyFlagsLength)
	}
	return append(dst, s.Flags...), nil
}

// SignerUserIDSubpacket names the user ID responsible for the signature,
// type 28.
type SignerUserIDSubpacket struct {
	Critical bool
	ID       string
}

func parseSignerUserID(in *cursor.Cursor, critical bool) (SignatureSubpacket, error) {
	if in.Remaining() > MaxUserIDLength {
		return nil, tooLong(in.Position(), in.Remaining(), MaxUserIDLength)
	}
	return &SignerUserIDSubpacket{Critical: critical, ID: string(in.Rest())}, nil
}

func (s *SignerUserIDSubpacket) Type() SubpacketType { return SubpacketSignerUserID }
func (s *SignerUserIDSubpacket) IsCritical() bool    { return s.Critical }

func (s *SignerUserIDSubpacket) appendBody(dst []byte) ([]byte, error) {
	return append(dst, s.ID...), nil
}

// RevocationReasonSubpacket explains a revocation, type 29: a machine
// readable code octet and a human-readable string.
type RevocationReasonSubpacket struct {
	Critical bool
	Code     byte
	Reason   string
}

func parseRevocationReason(in *cursor.Cursor, critical bool) (SignatureSubpacket, error) {
	code, err := in.Byte()
	if err != nil {
		return nil, wrapBounds(err)
	}
	if in.Remaining() > MaxRevocationReasonLength {
		return nil, tooLong(in.Position(), in.Remaining(), MaxRevocationReasonLength)
	}
	return &RevocationReasonSubpacket{Critical: critical, Code: code, Reason: string(in.Rest())}, nil
}

func (s *RevocationReasonSubpacket) Type() SubpacketType { return SubpacketRevocationReason }
func (s *RevocationReasonSubpacket) IsCritical() bool    { return s.Critical }

func (s *RevocationReasonSubpacket) appendBody(dst []byte) ([]byte, error) {
	dst = append(dst, s.Code)
	return append(dst, s.Reason...), nil
}

// FeaturesSubpacket advertises format features the key holder supports,
// type 30.
type FeaturesSubpacket struct {
	Critical bool
	Features []byte
}

func parseFeatures(in *cursor.Cursor, critical bool) (SignatureSubpacket, error) {
	if in.Remaining() > MaxFeaturesLength {
		return nil, tooLong(in.Position(), in.Remaining(), MaxFeaturesLength)
	}
	return &FeaturesSubpacket{Critical: critical, Features: in.Rest()}, nil
}

func (s *FeaturesSubpacket) Type() SubpacketType { return SubpacketFeatures }
func (s *FeaturesSubpacket) IsCritical() bool    { return s.Critical }

func (s *FeaturesSubpacket) appendBody(dst []byte) ([]byte, error) {
	return append(dst, s.Features...), nil
}

// EmbeddedSignatureSubpacket nests a complete signature packet body,
// type 32, typically a primary key binding signature. The bytes are kept
// raw; Signature decodes them on demand.
type EmbeddedSignatureSubpacket struct {
	Critical bool
	Data     []byte
}

func parseEmbeddedSignature(in *cursor.Cursor, critical bool) (SignatureSubpacket, error) {
	return &EmbeddedSignatureSubpacket{Critical: critical, Data: in.Rest()}, nil
}

func (s *EmbeddedSignatureSubpacket) Type() SubpacketType { return SubpacketEmbeddedSignature }
func (s *EmbeddedSignatureSubpacket) IsCritical() bool    { return s.Critical }

// Signature decodes the embedded signature packet body.
func (s *EmbeddedSignatureSubpacket) Signature() (*SignaturePacket, error) {
	cfg := defaultParseConfig()
	p, err := parseSignature(cursor.New(s.Data), &cfg)
	if err != nil {
		return nil, err
	}
	return p.(*SignaturePacket), nil
}

func (s *EmbeddedSignatureSubpacket) appendBody(dst []byte) ([]byte, error) {
	return append(dst, s.Data...), nil
}

// IssuerFingerprintSubpacket names the signing key by its fingerprint,
// type 33: a key version octet followed by the fingerprint for that
// version.
type IssuerFingerprintSubpacket struct {
	Critical bool
	Version  byte
	// Fingerprint is 20 bytes for version 4 keys; other versions are
	// carried as-is.
	Fingerprint []byte
}

func parseIssuerFingerprint(in *cursor.Cursor, critical bool) (SignatureSubpacket, error) {
	version, err := in.Byte()
	if err != nil {
		return nil, wrapBounds(err)
	}
	if version == 4 && in.Remaining() < fingerprintV4Size {
		return nil, truncated(in.Position(), fingerprintV4Size, uint64(in.Remaining()))
	}
	if version == 4 && in.Remaining() > fingerprintV4Size {
		return nil, trailing(in.Position()+fingerprintV4Size, in.Remaining()-fingerprintV4Size)
	}
	return &IssuerFingerprintSubpacket{Critical: critical, Version: version, Fingerprint: in.Rest()}, nil
}

func (s *IssuerFingerprintSubpacket) Type() SubpacketType { return SubpacketIssuerFingerprint }
func (s *IssuerFingerprintSubpacket) IsCritical() bool    { return s.Critical }

func (s *IssuerFingerprintSubpacket) appendBody(dst []byte) ([]byte, error) {
	dst = append(dst, s.Version)
	return append(dst, s.Fingerprint...), nil
}

func appendUint32(dst []byte, n uint32) []byte {
	return append(dst, byte(n>>24), byte(n>>16), byte(n>>8), byte(n))
}
