package auth

import (
	"casino/pkg/domain"
	"crypto/rsa"
	"time"

	"github.com/go-faster/errors"
	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrSigningDisabled is returned by Issue when no private key is configured.
	ErrSigningDisabled = errors.New("token signing key is not configured")
	errNoSubject       = errors.New("token has no subject")
)

type TokenOptions struct {
	// PrivateKey is a PEM encoded RSA private key. Optional.
	PrivateKey string
	// PublicKey is a PEM encoded RSA public key.
	PublicKey string
	TTL       time.Duration
}

// TokenCodec issues and verifies RS256 tokens whose subject is a user ID.
type TokenCodec struct {
	private *rsa.PrivateKey
	public  *rsa.PublicKey
	ttl     time.Duration
	now     func() time.Time
}

func NewTokenCodec(opts TokenOptions) (*TokenCodec, error) {
	public, err := jwt.ParseRSAPublicKeyFromPEM([]byte(opts.PublicKey))
	if err != nil {
		return nil, errors.Wrap(err, "parse RSA public key")
	}

	c := &TokenCodec{
		public: public,
		ttl:    opts.TTL,
		now:    time.Now,
	}
	if opts.PrivateKey != "" {
		if c.private, err = jwt.ParseRSAPrivateKeyFromPEM([]byte(opts.PrivateKey)); err != nil {
			return nil, errors.Wrap(err, "parse RSA private key")
		}
	}

	return c, nil
}

// Issue signs a token for userID and returns it with its expiry.
func (c *TokenCodec) Issue(userID domain.UserID) (string, time.Time, error) {
	if c.private == nil {
		return "", time.Time{}, ErrSigningDisabled
	}

	now := c.now()
	expiresAt := now.Add(c.ttl)
	claims := jwt.RegisteredClaims{
		Subject:   userID.String(),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(c.private)
	if err != nil {
		return "", time.Time{}, errors.Wrap(err, "sign token")
	}

	return signed, expiresAt, nil
}

// Parse verifies the signature, algorithm and time claims of token and
// returns its subject.
func (c *TokenCodec) Parse(token string) (domain.UserID, error) {
	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return c.public, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(c.now),
	)
	if err != nil {
		return domain.UserID{}, errors.Wrap(err, "parse token")
	}
	if claims.Subject == "" {
		return domain.UserID{}, errNoSubject
	}

	id, err := domain.ParseUserID(claims.Subject)
	if err != nil {
		return domain.UserID{}, errors.Wrap(err, "parse subject")
	}

	return id, nil
}
