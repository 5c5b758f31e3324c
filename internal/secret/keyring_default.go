//go:build !windows

package secret

import "github.com/zalando/go-keyring"

func (o *osBackend) Get(service, account string) (string, error) {
	return keyring.Get(service, account)
}

func (o *osBackend) Set(service, account, value string) error {
	return keyring.Set(service, account, value)
}

func (o *osBackend) Delete(service, account string) error {
	return keyring.Delete(service, account)
}
