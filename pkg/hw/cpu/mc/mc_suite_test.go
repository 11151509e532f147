package mc_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

//go:generate mockgen -write_package_comment=false -package=mc -destination=mock_opcodetable_test.go github.com/Manu343726/xtensa/pkg/hw/cpu/mc OpcodeTable
func TestMC(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "MC Suite")
}
