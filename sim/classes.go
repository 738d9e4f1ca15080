package sim

import (
	"sort"

	"github.com/wippyai/hdf5/sys"
)

type propDef struct {
	name  string
	value []byte
}

// class is the shared definition behind every identifier that refers to
// a property list class. Copies of a class identifier point at the same
// definition.
type class struct {
	kind   sys.ClassKind
	name   string
	parent *class
	own    []propDef
}

// props returns the class's properties including inherited ones,
// sorted by name. A name defined closer to the leaf wins.
func (c *class) props() []propDef {
	seen := make(map[string]bool)
	var all []propDef
	for k := c; k != nil; k = k.parent {
		for _, p := range k.own {
			if seen[p.name] {
				continue
			}
			seen[p.name] = true
			all = append(all, p)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].name < all[j].name })
	return all
}

func (c *class) has(name string) bool {
	for k := c; k != nil; k = k.parent {
		for _, p := range k.own {
			if p.name == name {
				return true
			}
		}
	}
	return false
}

func def(name string, value ...byte) propDef {
	if value == nil {
		value = []byte{0}
	}
	return propDef{name: name, value: value}
}

// predefinedClasses builds the class hierarchy the native library ships
// with. Property names follow the native library's registered names.
func predefinedClasses() map[sys.ClassKind]*class {
	root := &class{kind: sys.ClassRoot, name: sys.ClassRoot.String()}

	mk := func(kind sys.ClassKind, parent *class, own ...propDef) *class {
		return &class{kind: kind, name: kind.String(), parent: parent, own: own}
	}

	objectCreate := mk(sys.ClassObjectCreate, root,
		def("max compact", 8),
		def("min dense", 6),
		def("object header flags", 0),
		def("pline"),
	)
	groupCreate := mk(sys.ClassGroupCreate, objectCreate,
		def("group info"),
		def("link info"),
	)
	fileCreate := mk(sys.ClassFileCreate, groupCreate,
		def("block_size", 0, 0, 0, 0),
		def("addr_byte_num", 8),
		def("obj_byte_num", 8),
		def("symbol_leaf", 4),
		def("btree_rank", 16, 32),
		def("super_vers", 0),
		def("num_shmsg_indexes", 0),
		def("file_space_strategy", 1),
		def("file_space_page_size", 0, 16),
	)
	fileAccess := mk(sys.ClassFileAccess, root,
		def("rdcc_nslots", 0x09, 0x02),
		def("rdcc_nbytes", 0, 0, 0x10),
		def("rdcc_w0", 75),
		def("alignment", 1),
		def("threshold", 1),
		def("meta_block_size", 0, 8),
		def("sieve_buf_size", 0, 0, 1),
		def("sdata_block_size", 0, 8),
		def("gc_ref", 0),
		def("close_degree", 0),
		def("family_offset", 0),
		def("libver_low_bound", 0),
		def("libver_high_bound", 4),
		def("use_file_locking", 1),
		def("vfd_info"),
	)
	linkAccess := mk(sys.ClassLinkAccess, root,
		def("max soft links", 16),
		def("external link prefix"),
		def("external link fapl"),
		def("external link file access flags", 0),
	)
	datasetCreate := mk(sys.ClassDatasetCreate, objectCreate,
		def("layout", 1),
		def("fill_value"),
		def("alloc_time_state", 1),
		def("external file list"),
		def("dset_oh_minimize", 0),
	)
	datasetAccess := mk(sys.ClassDatasetAccess, linkAccess,
		def("rdcc_nslots", 0xff, 0xff),
		def("rdcc_nbytes", 0xff, 0xff),
		def("rdcc_w0", 0xff),
		def("efile_prefix"),
		def("vds_prefix"),
		def("vds_view", 1),
		def("vds_printf_gap", 0),
		def("append_flush"),
	)
	datasetXfer := mk(sys.ClassDatasetXfer, root,
		def("max_temp_buf", 0, 0, 0x10),
		def("tconv_buf"),
		def("bkgr_buf"),
		def("bkgr_buf_type", 0),
		def("btree_split_ratio", 10, 50, 90),
		def("vlen_alloc"),
		def("edc", 0),
		def("data_transform"),
		def("io_xfer_mode", 0),
	)
	fileMount := mk(sys.ClassFileMount, root,
		def("local", 0),
	)
	groupAccess := mk(sys.ClassGroupAccess, linkAccess)
	datatypeCreate := mk(sys.ClassDatatypeCreate, objectCreate)
	datatypeAccess := mk(sys.ClassDatatypeAccess, linkAccess)
	stringCreate := mk(sys.ClassStringCreate, root,
		def("character_encoding", 0),
	)
	attributeCreate := mk(sys.ClassAttributeCreate, stringCreate)
	attributeAccess := mk(sys.ClassAttributeAccess, linkAccess)
	objectCopy := mk(sys.ClassObjectCopy, root,
		def("copy object", 0),
		def("merge committed dtype paths"),
		def("merge committed dtype callback"),
	)
	linkCreate := mk(sys.ClassLinkCreate, stringCreate,
		def("intermediate_group", 0),
	)

	all := []*class{
		root, objectCreate, groupCreate, fileCreate, fileAccess, linkAccess,
		datasetCreate, datasetAccess, datasetXfer, fileMount, groupAccess,
		datatypeCreate, datatypeAccess, stringCreate, attributeCreate,
		attributeAccess, objectCopy, linkCreate,
	}
	byKind := make(map[sys.ClassKind]*class, len(all))
	for _, c := range all {
		byKind[c.kind] = c
	}
	return byKind
}
