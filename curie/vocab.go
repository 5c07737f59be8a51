package curie

// Well-known vocabulary namespaces
//
// These constants provide the base identifiers of commonly used W3C and
// semantic web vocabularies, ready to register with AddPrefix or to compare
// against when contracting identifiers.
//
// References:
// - RDF: https://www.w3.org/TR/rdf12-concepts/
// - OWL: https://www.w3.org/TR/owl2-overview/
// - SKOS: https://www.w3.org/TR/skos-reference/
// - Dublin Core: https://www.dublincore.org/specifications/dublin-core/dcmi-terms/
// - Schema.org: https://schema.org/
// - PROV-O: https://www.w3.org/TR/prov-o/
// - GeoSPARQL: https://www.ogc.org/standards/geosparql

const (
	// NamespaceRDF is the RDF syntax vocabulary.
	NamespaceRDF = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"

	// NamespaceRDFS is the RDF Schema vocabulary.
	NamespaceRDFS = "http://www.w3.org/2000/01/rdf-schema#"

	// NamespaceOWL is the Web Ontology Language vocabulary.
	NamespaceOWL = "http://www.w3.org/2002/07/owl#"

	// NamespaceXSD is the XML Schema datatype namespace.
	NamespaceXSD = "http://www.w3.org/2001/XMLSchema#"

	// NamespaceFOAF is the Friend of a Friend vocabulary.
	NamespaceFOAF = "http://xmlns.com/foaf/0.1/"

	// NamespaceSKOS is the Simple Knowledge Organization System vocabulary.
	NamespaceSKOS = "http://www.w3.org/2004/02/skos/core#"

	// NamespaceDCTerms is the Dublin Core metadata terms namespace.
	NamespaceDCTerms = "http://purl.org/dc/terms/"

	// NamespaceDCElements is the legacy Dublin Core elements namespace.
	NamespaceDCElements = "http://purl.org/dc/elements/1.1/"

	// NamespaceSchema is the Schema.org vocabulary.
	NamespaceSchema = "https://schema.org/"

	// NamespaceProv is the W3C provenance ontology.
	NamespaceProv = "http://www.w3.org/ns/prov#"

	// NamespaceGeoSPARQL is the OGC GeoSPARQL ontology.
	NamespaceGeoSPARQL = "http://www.opengis.net/ont/geosparql#"
)

// WellKnownPrefixes returns a fresh registry preloaded with the namespaces
// above under their customary prefixes: rdf, rdfs, owl, xsd, foaf, skos,
// dcterms, dc, schema, prov and geo. No default base is set, and the caller
// may mutate the result freely.
func WellKnownPrefixes() *PrefixMapping {
	return &PrefixMapping{prefixes: map[string]string{
		"rdf":     NamespaceRDF,
		"rdfs":    NamespaceRDFS,
		"owl":     NamespaceOWL,
		"xsd":     NamespaceXSD,
		"foaf":    NamespaceFOAF,
		"skos":    NamespaceSKOS,
		"dcterms": NamespaceDCTerms,
		"dc":      NamespaceDCElements,
		"schema":  NamespaceSchema,
		"prov":    NamespaceProv,
		"geo":     NamespaceGeoSPARQL,
	}}
}
