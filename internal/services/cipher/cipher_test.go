package cipher

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type CipherSuite struct {
	suite.Suite
}

func TestCipherSuite(t *testing.T) {
	suite.Run(t, new(CipherSuite))
}

// Encode tests

func (s *CipherSuite) TestEncodeSingleLetter() {
	out, err := Encode("a")
	s.Require().NoError(err)
	s.Equal("1", out)

	out, err = Encode("z")
	s.Require().NoError(err)
	s.Equal("26", out)
}

func (s *CipherSuite) TestEncodeWord() {
	out, err := Encode("veritas")
	s.Require().NoError(err)
	s.Equal("22.5.18.9.20.1.19", out)
}

func (s *CipherSuite) TestEncodeFoldsCase() {
	lower, err := Encode("sapientia")
	s.Require().NoError(err)

	mixed, err := Encode("SaPiEnTiA")
	s.Require().NoError(err)

	s.Equal(lower, mixed)
}

func (s *CipherSuite) TestEncodeEmptyString() {
	out, err := Encode("")
	s.Require().NoError(err)
	s.Equal("", out)
}

func (s *CipherSuite) TestEncodeRejectsNonLetters() {
	for _, input := range []string{"a b", "a1", "héllo", "a.b", "-"} {
		_, err := Encode(input)
		s.ErrorIs(err, ErrInvalidInput, "input %q", input)
	}
}

// Decode tests

func (s *CipherSuite) TestDecodeSingleToken() {
	out, err := Decode("1")
	s.Require().NoError(err)
	s.Equal("a", out)

	out, err = Decode("26")
	s.Require().NoError(err)
	s.Equal("z", out)
}

func (s *CipherSuite) TestDecodeWord() {
	out, err := Decode("22.5.18.9.20.1.19")
	s.Require().NoError(err)
	s.Equal("veritas", out)
}

func (s *CipherSuite) TestDecodeEmptyString() {
	out, err := Decode("")
	s.Require().NoError(err)
	s.Equal("", out)
}

func (s *CipherSuite) TestDecodeRejectsBadTokens() {
	for _, input := range []string{"0", "27", "-1", "abc", "1..2", "1.x"} {
		_, err := Decode(input)
		s.ErrorIs(err, ErrInvalidToken, "input %q", input)
	}
}

// Round trips

func (s *CipherSuite) TestRoundTrip() {
	for _, word := range []string{"sapientia", "plenitudo", "passio", "veritas", "fortitudo", "a", "zyx"} {
		encoded, err := Encode(word)
		s.Require().NoError(err)

		decoded, err := Decode(encoded)
		s.Require().NoError(err)
		s.Equal(word, decoded)
	}
}
