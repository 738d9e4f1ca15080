package sim

import (
	"bytes"
	"sort"

	"go.uber.org/zap"

	"github.com/wippyai/hdf5/sys"
)

type prop struct {
	name  string
	value []byte
}

// plist is the value behind a property list identifier. Properties are
// kept sorted by name, the order the native library iterates in.
type plist struct {
	cls   *class
	props []prop
}

func newPlist(c *class) *plist {
	defs := c.props()
	p := &plist{cls: c, props: make([]prop, len(defs))}
	for i, d := range defs {
		p.props[i] = prop{name: d.name, value: bytes.Clone(d.value)}
	}
	return p
}

func (p *plist) clone() *plist {
	c := &plist{cls: p.cls, props: make([]prop, len(p.props))}
	for i, pr := range p.props {
		c.props[i] = prop{name: pr.name, value: bytes.Clone(pr.value)}
	}
	return c
}

// Release drops the property values once the identifier is gone.
func (p *plist) Release() {
	logger().Debug("property list released",
		zap.String("class", p.cls.name),
		zap.Int("properties", len(p.props)))
	p.props = nil
}

func (p *plist) find(name string) int {
	i := sort.Search(len(p.props), func(i int) bool { return p.props[i].name >= name })
	if i < len(p.props) && p.props[i].name == name {
		return i
	}
	return -1
}

func (p *plist) set(name string, value []byte) {
	if i := p.find(name); i >= 0 {
		p.props[i].value = bytes.Clone(value)
		return
	}
	p.props = append(p.props, prop{name: name, value: bytes.Clone(value)})
	sort.Slice(p.props, func(i, j int) bool { return p.props[i].name < p.props[j].name })
}

func (p *plist) equal(o *plist) bool {
	if !sameClass(p.cls, o.cls) || len(p.props) != len(o.props) {
		return false
	}
	for i := range p.props {
		if p.props[i].name != o.props[i].name || !bytes.Equal(p.props[i].value, o.props[i].value) {
			return false
		}
	}
	return true
}

func sameClass(a, b *class) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return a.kind == b.kind && a.name == b.name && sameClass(a.parent, b.parent)
}

func (l *Library) plistOf(op string, id sys.ID) (*plist, bool) {
	v, ok := l.reg.GetTyped(id, sys.TypeGenPropList)
	if !ok {
		l.push(op, "Property lists", "Inappropriate type", "not a property list")
		return nil, false
	}
	return v.(*plist), true
}

func (l *Library) classOf(op string, id sys.ID) (*class, bool) {
	v, ok := l.reg.GetTyped(id, sys.TypeGenPropClass)
	if !ok {
		l.push(op, "Property lists", "Inappropriate type", "not a property list class")
		return nil, false
	}
	return v.(*class), true
}

// propObject resolves an identifier that may be a list or a class.
func (l *Library) propObject(op string, id sys.ID) (*plist, *class, bool) {
	typ, ok := l.reg.Type(id)
	if ok {
		switch typ {
		case sys.TypeGenPropList:
			p, _ := l.plistOf(op, id)
			return p, nil, true
		case sys.TypeGenPropClass:
			c, _ := l.classOf(op, id)
			return nil, c, true
		}
	}
	l.push(op, "Arguments", "Inappropriate type", "not a property list or class")
	return nil, nil, false
}

func (l *Library) register(op string, typ sys.IDType, v any) sys.ID {
	id, err := l.reg.Register(typ, v, true)
	if err != nil {
		l.push(op, "Object ID", "Unable to register new ID", err.Error())
		return sys.InvalidID
	}
	return id
}

// PCreate implements sys.Library.
func (l *Library) PCreate(cls sys.ID) sys.ID {
	defer l.enter("H5Pcreate")()
	if l.fault("H5Pcreate") {
		return sys.InvalidID
	}
	c, ok := l.classOf("H5Pcreate", cls)
	if !ok {
		return sys.InvalidID
	}
	return l.register("H5Pcreate", sys.TypeGenPropList, newPlist(c))
}

// PCopy implements sys.Library.
func (l *Library) PCopy(id sys.ID) sys.ID {
	defer l.enter("H5Pcopy")()
	if l.fault("H5Pcopy") {
		return sys.InvalidID
	}
	p, c, ok := l.propObject("H5Pcopy", id)
	if !ok {
		return sys.InvalidID
	}
	if p != nil {
		return l.register("H5Pcopy", sys.TypeGenPropList, p.clone())
	}
	return l.register("H5Pcopy", sys.TypeGenPropClass, c)
}

// PEqual implements sys.Library.
func (l *Library) PEqual(a, b sys.ID) sys.Tri {
	defer l.enter("H5Pequal")()
	if l.fault("H5Pequal") {
		return -1
	}
	pa, ca, ok := l.propObject("H5Pequal", a)
	if !ok {
		return -1
	}
	pb, cb, ok := l.propObject("H5Pequal", b)
	if !ok {
		return -1
	}
	switch {
	case pa != nil && pb != nil:
		return tri(pa.equal(pb))
	case ca != nil && cb != nil:
		return tri(sameClass(ca, cb))
	}
	l.push("H5Pequal", "Property lists", "Inappropriate type", "can't compare objects of different types")
	return -1
}

// PExist implements sys.Library.
func (l *Library) PExist(id sys.ID, name string) sys.Tri {
	defer l.enter("H5Pexist")()
	if l.fault("H5Pexist") {
		return -1
	}
	if name == "" {
		l.push("H5Pexist", "Arguments", "Bad value", "invalid property name")
		return -1
	}
	p, c, ok := l.propObject("H5Pexist", id)
	if !ok {
		return -1
	}
	if p != nil {
		return tri(p.find(name) >= 0)
	}
	return tri(c.has(name))
}

// PIterate implements sys.Library. The callback may call back into the
// library; it sees a snapshot of the names taken before iteration.
func (l *Library) PIterate(id sys.ID, fn sys.PropFunc) sys.Herr {
	defer l.enter("H5Piterate")()
	if l.fault("H5Piterate") {
		return -1
	}
	if fn == nil {
		l.push("H5Piterate", "Arguments", "Bad value", "invalid iteration callback")
		return -1
	}
	p, c, ok := l.propObject("H5Piterate", id)
	if !ok {
		return -1
	}

	var names []string
	if p != nil {
		for _, pr := range p.props {
			names = append(names, pr.name)
		}
	} else {
		for _, d := range c.props() {
			names = append(names, d.name)
		}
	}

	for _, name := range names {
		l.inCb.Add(1)
		ret := fn(id, name)
		l.inCb.Add(-1)
		if ret < 0 {
			l.push("H5Piterate", "Property lists", "Iteration failed", "iteration callback failed")
			return ret
		}
		if ret > 0 {
			return ret
		}
	}
	return 0
}

// PGetNProps implements sys.Library.
func (l *Library) PGetNProps(id sys.ID) (int, sys.Herr) {
	defer l.enter("H5Pget_nprops")()
	if l.fault("H5Pget_nprops") {
		return 0, -1
	}
	p, c, ok := l.propObject("H5Pget_nprops", id)
	if !ok {
		return 0, -1
	}
	if p != nil {
		return len(p.props), 0
	}
	return len(c.props()), 0
}

// PGetClass implements sys.Library.
func (l *Library) PGetClass(id sys.ID) sys.ID {
	defer l.enter("H5Pget_class")()
	if l.fault("H5Pget_class") {
		return sys.InvalidID
	}
	p, ok := l.plistOf("H5Pget_class", id)
	if !ok {
		return sys.InvalidID
	}
	return l.register("H5Pget_class", sys.TypeGenPropClass, p.cls)
}

// PGetClassName implements sys.Library.
func (l *Library) PGetClassName(cls sys.ID) (string, sys.Herr) {
	defer l.enter("H5Pget_class_name")()
	if l.fault("H5Pget_class_name") {
		return "", -1
	}
	c, ok := l.classOf("H5Pget_class_name", cls)
	if !ok {
		return "", -1
	}
	return c.name, 0
}

// PGetClassParent implements sys.Library.
func (l *Library) PGetClassParent(cls sys.ID) sys.ID {
	defer l.enter("H5Pget_class_parent")()
	if l.fault("H5Pget_class_parent") {
		return sys.InvalidID
	}
	c, ok := l.classOf("H5Pget_class_parent", cls)
	if !ok {
		return sys.InvalidID
	}
	if c.parent == nil {
		l.push("H5Pget_class_parent", "Property lists", "Not found", "no parent class")
		return sys.InvalidID
	}
	return l.register("H5Pget_class_parent", sys.TypeGenPropClass, c.parent)
}

func tri(b bool) sys.Tri {
	if b {
		return 1
	}
	return 0
}
