package mail

import (
	"fmt"
	"net/smtp"
)

// xoauth2Auth implements the SASL XOAUTH2 mechanism used by the gmail relay.
type xoauth2Auth struct {
	username    string
	accessToken string
}

func NewXOAuth2Auth(username, accessToken string) smtp.Auth {
	return &xoauth2Auth{username: username, accessToken: accessToken}
}

func (a *xoauth2Auth) Start(_ *smtp.ServerInfo) (string, []byte, error) {
	resp := fmt.Sprintf("user=%s\x01auth=Bearer %s\x01\x01", a.username, a.accessToken)
	return "XOAUTH2", []byte(resp), nil
}

// Next replies with an empty line on a challenge so the server reports the
// final error instead of dropping the connection mid-handshake.
func (a *xoauth2Auth) Next(_ []byte, more bool) ([]byte, error) {
	if more {
		return []byte{}, nil
	}
	return nil, nil
}
