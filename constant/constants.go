package constant

const (
	// HCType is the header Content-Type
	HCType = "Content-Type"

	HAccept            = "Accept"
	HAcceptPatch       = "Accept-Patch"
	HAcceptPost        = "Accept-Post"
	HAcceptRanges      = "Accept-Ranges"
	HAcceptProfile     = "Accept-Profile"
	HAllow             = "Allow"
	HETag              = "ETag"
	HIfMatch           = "If-Match"
	HIfModifiedSince   = "If-Modified-Since"
	HIfNoneMatch       = "If-None-Match"
	HIfUnmodifiedSince = "If-Unmodified-Since"
	HLastModified      = "Last-Modified"
	HLink              = "Link"
	HLocation          = "Location"
	HMementoDatetime   = "Memento-Datetime"
	HPrefer            = "Prefer"
	HPreferenceApplied = "Preference-Applied"
	HSlug              = "Slug"
	HVary              = "Vary"
)

const (
	TextPlain             = "text/plain"
	TextTurtle            = "text/turtle"
	ApplicationLDJSON     = "application/ld+json"
	ApplicationNTriples   = "application/n-triples"
	ApplicationRDFXML     = "application/rdf+xml"
	ApplicationSPARQLUpd  = "application/sparql-update"
	ApplicationLinkFormat = "application/link-format"
	ApplicationOctet      = "application/octet-stream"
)

const (
	// InternalScheme prefixes every identifier persisted by the server
	InternalScheme = "gold:"
	// SkolemPrefix prefixes the IRIs minted for blank nodes
	SkolemPrefix = InternalScheme + "bnode/"
	// DefaultPartition is used when the configuration names none
	DefaultPartition = "repository"
)

const (
	// ExtACL selects the access-control view of a resource (?ext=acl)
	ExtACL = "acl"
	// ExtTimemap selects the memento list of a resource (?ext=timemap)
	ExtTimemap = "timemap"
)

const (
	RelType          = "type"
	RelConstrainedBy = "http://www.w3.org/ns/ldp#constrainedBy"
	RelTimemap       = "timemap"
	RelMemento       = "memento"
	RelOriginal      = "original"
	RelACL           = "acl"
)

// Vocabulary namespaces
const (
	NsRDF  = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	NsXSD  = "http://www.w3.org/2001/XMLSchema#"
	NsLDP  = "http://www.w3.org/ns/ldp#"
	NsDC   = "http://purl.org/dc/terms/"
	NsPROV = "http://www.w3.org/ns/prov#"
	NsAS   = "https://www.w3.org/ns/activitystreams#"
	NsACL  = "http://www.w3.org/ns/auth/acl#"
	NsGold = "https://w3id.org/gold/ns#"
	NsJSON = "http://www.w3.org/ns/json-ld#"
)

const (
	RDFType = NsRDF + "type"

	XSDString   = NsXSD + "string"
	XSDDateTime = NsXSD + "dateTime"
	XSDLong     = NsXSD + "long"

	LDPResource          = NsLDP + "Resource"
	LDPRDFSource         = NsLDP + "RDFSource"
	LDPNonRDFSource      = NsLDP + "NonRDFSource"
	LDPContainer         = NsLDP + "Container"
	LDPBasicContainer    = NsLDP + "BasicContainer"
	LDPDirectContainer   = NsLDP + "DirectContainer"
	LDPIndirectContainer = NsLDP + "IndirectContainer"

	LDPContains                = NsLDP + "contains"
	LDPMembershipResource      = NsLDP + "membershipResource"
	LDPHasMemberRelation       = NsLDP + "hasMemberRelation"
	LDPIsMemberOfRelation      = NsLDP + "isMemberOfRelation"
	LDPInsertedContentRelation = NsLDP + "insertedContentRelation"

	DCHasPart = NsDC + "hasPart"
	DCFormat  = NsDC + "format"
	DCExtent  = NsDC + "extent"

	PROVActivity          = NsPROV + "Activity"
	PROVWasGeneratedBy    = NsPROV + "wasGeneratedBy"
	PROVWasAssociatedWith = NsPROV + "wasAssociatedWith"
	PROVActedOnBehalfOf   = NsPROV + "actedOnBehalfOf"
	PROVAtTime            = NsPROV + "atTime"

	ASCreate = NsAS + "Create"
	ASUpdate = NsAS + "Update"
	ASDelete = NsAS + "Delete"

	GoldDeletedResource     = NsGold + "DeletedResource"
	GoldAnonymousAgent      = NsGold + "AnonymousAgent"
	GoldPreferUserManaged   = NsGold + "PreferUserManaged"
	GoldPreferServerManaged = NsGold + "PreferServerManaged"
	GoldPreferAudit         = NsGold + "PreferAudit"
	GoldPreferAccessControl = NsGold + "PreferAccessControl"
	GoldInvalidType         = NsGold + "InvalidType"
	GoldInvalidProperty     = NsGold + "InvalidProperty"
	GoldInvalidRange        = NsGold + "InvalidRange"
	GoldInvalidCardinality  = NsGold + "InvalidCardinality"

	JSONLDExpanded  = NsJSON + "expanded"
	JSONLDCompacted = NsJSON + "compacted"
	JSONLDFlattened = NsJSON + "flattened"
)

// AllMethods lists every method the LDP router dispatches.
func AllMethods() []string {
	return []string{
		"GET", "HEAD", "OPTIONS", "PUT", "DELETE", "PATCH", "POST",
	}
}
