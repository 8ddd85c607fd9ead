package par

// SiteKind is the closed enumeration of physical site kinds a device
// descriptor can expose (spec §3).
type SiteKind int

const (
	SiteIOB SiteKind = iota
	SiteLUT2
	SiteLUT3
	SiteLUT4
	SiteDFF
	SiteDFFSR
	SiteCount8
	SiteCount8Adv
	SiteCount14
	SiteCount14Adv
	SiteSHREG
	SiteINV
	SiteACMP
	SiteVREF
	SiteDAC
	SitePGA
	SiteABUF
	SiteLFOSC
	SiteRCOSC
	SiteRINGOSC
	SiteBANDGAP
	SitePOR
	SiteSYSRESET
	SiteVDD
	SiteVSS
)

// Table D — canonical primitive type names, one label each, in the
// allocation order make_graphs.cpp uses. Order matters only in that it
// fixes which integer each name receives; nothing downstream depends
// on the specific values beyond equality.
var canonicalPrimitiveNames = []string{
	"GP_IBUF",
	"GP_OBUF",
	"GP_IOBUF",
	"GP_2LUT",
	"GP_3LUT",
	"GP_4LUT",
	"GP_INV",
	"GP_SHREG",
	"GP_VREF",
	"GP_ACMP",
	"GP_DAC",
	"GP_DFF",
	"GP_DFFSR",
	"GP_ABUF",
	"GP_BANDGAP",
	"GP_LFOSC",
	"GP_PGA",
	"GP_POR",
	"GP_RCOSC",
	"GP_RINGOSC",
	"GP_SYSRESET",
	"GP_VDD",
	"GP_VSS",
	"GP_COUNT8",
	"GP_COUNT8_ADV",
	"GP_COUNT14",
	"GP_COUNT14_ADV",
}

// Table D aliases: alternate primitive-type spellings that resolve to
// an already-allocated canonical label.
var primitiveAliases = map[string]string{
	"GP_DFFR": "GP_DFFSR",
	"GP_DFFS": "GP_DFFSR",
}

// PartID enumerates the device variants this core knows about.
// Only SLG46620 has a dedicated-edge table (spec §4.3.4); other parts
// are accepted but get fabric edges only.
type PartID string

const (
	PartSLG46620 PartID = "SLG46620"
)
