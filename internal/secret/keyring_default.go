//go:build !windows

package secret

import "github.com/zalando/go-keyring"

func (o *osKeyring) Get(service, account string) (string, error) {
	return keyring.Get(service, account)
}
