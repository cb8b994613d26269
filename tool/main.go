package main

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/alecthomas/participle"

	. "github.com/dave/jennifer/jen"
)

type Families struct {
	Families []*Family `@@*`
}

type Family struct {
	Name     string   `"family" @Ident`
	Extends  string   `("extends" @Ident)?`
	Variants []string `"=" "|"? @Ident ("|" @Ident)* ";"`
}

// ancestry returns the family followed by every family it extends.
func (t *Families) ancestry(name string) (chain []string) {
	for name != "" {
		chain = append(chain, name)
		next := ""
		for _, fam := range t.Families {
			if fam.Name == name {
				next = fam.Extends
			}
		}
		name = next
	}
	return
}

func (t *Families) variants() (all []string) {
	for _, fam := range t.Families {
		all = append(all, fam.Variants...)
	}
	return
}

func (t *Families) familyOf(variant string) string {
	for _, fam := range t.Families {
		for _, v := range fam.Variants {
			if v == variant {
				return fam.Name
			}
		}
	}
	return ""
}

func GenerateDecls(pkgname, source string, t *Families) string {
	f := NewFile(pkgname)
	f.HeaderComment(fmt.Sprintf("Code generated by adtgen from %s. DO NOT EDIT.", source))

	for _, fam := range t.Families {
		parent := fam.Extends
		if parent == "" {
			parent = "Node"
		}
		f.Type().Id(fam.Name).Interface(
			Id(parent),
			Id("is_" + fam.Name).Params(),
		)
	}

	all := t.variants()
	f.Const().DefsFunc(func(g *Group) {
		for i, v := range all {
			if i == 0 {
				g.Id("Kind" + v).Id("NodeKind").Op("=").Iota()
				continue
			}
			g.Id("Kind" + v)
		}
	})

	f.Func().Params(Id("k").Id("NodeKind")).Id("String").Params().String().Block(
		Switch(Id("k")).BlockFunc(func(g *Group) {
			for _, v := range all {
				g.Case(Id("Kind" + v)).Block(Return(Lit(v)))
			}
		}),
		Return(Lit("NodeKind(").Op("+").Qual("strconv", "Itoa").Call(Id("int").Call(Id("k"))).Op("+").Lit(")")),
	)

	for _, v := range all {
		chain := t.ancestry(t.familyOf(v))
		for i := len(chain) - 1; i >= 0; i-- {
			f.Func().Params(Id("v").Op("*").Id(v)).Id("is_" + chain[i]).Params().Block()
		}
		f.Func().Params(Id("v").Op("*").Id(v)).Id("Kind").Params().Id("NodeKind").Block(
			Return(Id("Kind" + v)),
		)
		f.Func().Params(Id("v").Op("*").Id(v)).Id("String").Params().String().Block(
			Return(Id("render").Call(Id("v"))),
		)
	}

	return fmt.Sprintf("%#v", f)
}

func main() {
	parser := participle.MustBuild(&Families{})

	in := os.Args[1]
	out := os.Args[2]
	pkgname := os.Args[3]

	inData, err := ioutil.ReadFile(in)
	if err != nil {
		panic(err)
	}

	ast := Families{}
	err = parser.ParseBytes(inData, &ast)
	if err != nil {
		panic(err)
	}

	err = ioutil.WriteFile(out, []byte(GenerateDecls(pkgname, filepath.Base(in), &ast)), 0644)
	if err != nil {
		panic(err)
	}
}
