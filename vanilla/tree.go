package vanilla

import (
	"github.com/chrisuehlinger/vanillautils/dom"
)

// HasParent walks from n (inclusive) up the parent chain and reports whether
// an element with the given id is found. Only elements carry ids, so an
// empty id never matches a document, text or comment node. The walk ends
// after a document node or at the top of the chain. A nil n yields false.
func HasParent(n *dom.Node, id string) bool {
	for cur := n; cur != nil; cur = cur.ParentNode() {
		if el := cur.AsElement(); el != nil && el.Id() == id {
			return true
		}
		if cur.NodeType() == dom.DocumentNode {
			break
		}
	}
	return false
}
