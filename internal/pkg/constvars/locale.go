package constvars

// LocalizedText pairs the supported display languages for one message tag.
// Adding a locale means adding a field here, not a new code path.
type LocalizedText struct {
	EN string
	ID string
}

// Message tags used by the claim workflow and gateway errors.
const (
	MsgTagInvalidTransition       = "invalid-status-transition"
	MsgTagSpecialCaseNotCompleted = "special-case-not-completed"
	MsgTagCancelAfterSubmit       = "cancel-after-submit"
	MsgTagDeleteAfterDraft        = "delete-after-draft"
	MsgTagDuplicateSEP            = "duplicate-sep"
	MsgTagDiagnosisRequired       = "diagnosis-required"
	MsgTagGrouperEngineRequired   = "grouper-engine-required"
	MsgTagBundleBeforeFinalized   = "bundle-before-finalized"
	MsgTagNotSpecialCase          = "not-special-case"
	MsgTagDocumentNotUploaded     = "document-not-uploaded"
)

var localizedMessages = map[string]LocalizedText{
	MsgTagInvalidTransition: {
		EN: "the claim cannot move from %s to %s",
		ID: "klaim tidak dapat berpindah dari status %s ke %s",
	},
	MsgTagSpecialCaseNotCompleted: {
		EN: "tuberculosis reporting must be completed before the claim can be finalized",
		ID: "pelaporan SITB harus diselesaikan sebelum klaim dapat difinalisasi",
	},
	MsgTagCancelAfterSubmit: {
		EN: "a claim that has been submitted to the payer can no longer be cancelled",
		ID: "klaim yang sudah dikirim ke BPJS tidak dapat dibatalkan",
	},
	MsgTagDeleteAfterDraft: {
		EN: "only draft claims can be deleted",
		ID: "hanya klaim berstatus draf yang dapat dihapus",
	},
	MsgTagDuplicateSEP: {
		EN: "another active claim already uses this SEP number",
		ID: "nomor SEP ini sudah digunakan oleh klaim aktif lain",
	},
	MsgTagDiagnosisRequired: {
		EN: "at least one diagnosis must be attached before coding the claim",
		ID: "minimal satu diagnosis harus dilampirkan sebelum koding klaim",
	},
	MsgTagGrouperEngineRequired: {
		EN: "a grouper engine must be selected before grouping the claim",
		ID: "mesin grouper harus dipilih sebelum proses grouping klaim",
	},
	MsgTagBundleBeforeFinalized: {
		EN: "the supporting-document bundle can only be uploaded after the claim is finalized",
		ID: "berkas pendukung hanya dapat diunggah setelah klaim difinalisasi",
	},
	MsgTagNotSpecialCase: {
		EN: "the claim is not flagged for tuberculosis reporting",
		ID: "klaim ini tidak ditandai untuk pelaporan SITB",
	},
	MsgTagDocumentNotUploaded: {
		EN: "no supporting-document bundle has been uploaded for this claim",
		ID: "belum ada berkas pendukung yang diunggah untuk klaim ini",
	},
}

// LocalizedMessage resolves a message tag for the requested locale, falling
// back to English for unknown locales and to the raw tag for unknown tags.
func LocalizedMessage(tag, locale string) string {
	text, ok := localizedMessages[tag]
	if !ok {
		return tag
	}
	if locale == LocaleIndonesian {
		return text.ID
	}
	return text.EN
}
