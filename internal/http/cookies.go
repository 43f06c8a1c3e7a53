package http

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"net/http"
	"strings"
)

const signedCookiePrefix = "s:"

// CookieOptions describes the session cookie that carries the access token.
type CookieOptions struct {
	Name     string
	Secret   string
	HTTPOnly bool
	SameSite http.SameSite
	Secure   bool
	Signed   bool
}

func (o CookieOptions) name() string {
	if o.Name == "" {
		return "jwt"
	}
	return o.Name
}

func (o CookieOptions) set(w http.ResponseWriter, token string) {
	value := token
	if o.Signed {
		value = signCookieValue(token, o.Secret)
	}
	http.SetCookie(w, &http.Cookie{
		Name:     o.name(),
		Value:    value,
		Path:     "/",
		HttpOnly: o.HTTPOnly,
		SameSite: o.SameSite,
		Secure:   o.Secure,
	})
}

func (o CookieOptions) clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     o.name(),
		Value:    "",
		Path:     "/",
		HttpOnly: o.HTTPOnly,
		SameSite: o.SameSite,
		Secure:   o.Secure,
		MaxAge:   -1,
	})
}

// read returns the token carried by the request cookie, or "" when it is
// absent or its signature does not verify.
func (o CookieOptions) read(r *http.Request) string {
	cookie, err := r.Cookie(o.name())
	if err != nil || cookie.Value == "" {
		return ""
	}
	if !o.Signed {
		return cookie.Value
	}
	token, ok := unsignCookieValue(cookie.Value, o.Secret)
	if !ok {
		return ""
	}
	return token
}

// signCookieValue produces "s:<value>.<signature>", the format used by
// cookie-parser, so existing browser sessions stay readable.
func signCookieValue(value, secret string) string {
	return signedCookiePrefix + value + "." + cookieSignature(value, secret)
}

func unsignCookieValue(signed, secret string) (string, bool) {
	rest, ok := strings.CutPrefix(signed, signedCookiePrefix)
	if !ok {
		return "", false
	}
	dot := strings.LastIndexByte(rest, '.')
	if dot <= 0 {
		return "", false
	}
	value, sig := rest[:dot], rest[dot+1:]
	if !hmac.Equal([]byte(sig), []byte(cookieSignature(value, secret))) {
		return "", false
	}
	return value, true
}

func cookieSignature(value, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(value))
	return base64.RawStdEncoding.EncodeToString(mac.Sum(nil))
}
