package authcmder_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestAuthCmd(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Auth Command Suite")
}
