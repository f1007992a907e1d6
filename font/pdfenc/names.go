// seehuhn.de/go/pdfgen - generate PDF page content
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package pdfenc

// winAnsiNames gives the glyph names of the WinAnsiEncoding.
//
// See Appendix D.2 of PDF 32000-1:2008.
var winAnsiNames = [256]string{
	".notdef", ".notdef", ".notdef", ".notdef", ".notdef", ".notdef", ".notdef", ".notdef", // 000
	".notdef", ".notdef", ".notdef", ".notdef", ".notdef", ".notdef", ".notdef", ".notdef", // 010
	".notdef", ".notdef", ".notdef", ".notdef", ".notdef", ".notdef", ".notdef", ".notdef", // 020
	".notdef", ".notdef", ".notdef", ".notdef", ".notdef", ".notdef", ".notdef", ".notdef", // 030
	"space", "exclam", "quotedbl", "numbersign", "dollar", "percent", "ampersand", "quotesingle", // 040
	"parenleft", "parenright", "asterisk", "plus", "comma", "hyphen", "period", "slash", // 050
	"zero", "one", "two", "three", "four", "five", "six", "seven", // 060
	"eight", "nine", "colon", "semicolon", "less", "equal", "greater", "question", // 070
	"at", "A", "B", "C", "D", "E", "F", "G", // 100
	"H", "I", "J", "K", "L", "M", "N", "O", // 110
	"P", "Q", "R", "S", "T", "U", "V", "W", // 120
	"X", "Y", "Z", "bracketleft", "backslash", "bracketright", "asciicircum", "underscore", // 130
	"grave", "a", "b", "c", "d", "e", "f", "g", // 140
	"h", "i", "j", "k", "l", "m", "n", "o", // 150
	"p", "q", "r", "s", "t", "u", "v", "w", // 160
	"x", "y", "z", "braceleft", "bar", "braceright", "asciitilde", ".notdef", // 170
	"Euro", ".notdef", "quotesinglbase", "florin", "quotedblbase", "ellipsis", "dagger", "daggerdbl", // 200
	"circumflex", "perthousand", "Scaron", "guilsinglleft", "OE", ".notdef", "Zcaron", ".notdef", // 210
	".notdef", "quoteleft", "quoteright", "quotedblleft", "quotedblright", "bullet", "endash", "emdash", // 220
	"tilde", "trademark", "scaron", "guilsinglright", "oe", ".notdef", "zcaron", "Ydieresis", // 230
	"space", "exclamdown", "cent", "sterling", "currency", "yen", "brokenbar", "section", // 240
	"dieresis", "copyright", "ordfeminine", "guillemotleft", "logicalnot", "hyphen", "registered", "macron", // 250
	"degree", "plusminus", "twosuperior", "threesuperior", "acute", "mu", "paragraph", "periodcentered", // 260
	"cedilla", "onesuperior", "ordmasculine", "guillemotright", "onequarter", "onehalf", "threequarters", "questiondown", // 270
	"Agrave", "Aacute", "Acircumflex", "Atilde", "Adieresis", "Aring", "AE", "Ccedilla", // 300
	"Egrave", "Eacute", "Ecircumflex", "Edieresis", "Igrave", "Iacute", "Icircumflex", "Idieresis", // 310
	"Eth", "Ntilde", "Ograve", "Oacute", "Ocircumflex", "Otilde", "Odieresis", "multiply", // 320
	"Oslash", "Ugrave", "Uacute", "Ucircumflex", "Udieresis", "Yacute", "Thorn", "germandbls", // 330
	"agrave", "aacute", "acircumflex", "atilde", "adieresis", "aring", "ae", "ccedilla", // 340
	"egrave", "eacute", "ecircumflex", "edieresis", "igrave", "iacute", "icircumflex", "idieresis", // 350
	"eth", "ntilde", "ograve", "oacute", "ocircumflex", "otilde", "odieresis", "divide", // 360
	"oslash", "ugrave", "uacute", "ucircumflex", "udieresis", "yacute", "thorn", "ydieresis", // 370
}

// macRomanNames gives the glyph names of the MacRomanEncoding.
// The Apple logo and the undefined codes map to ".notdef".
var macRomanNames = [256]string{
	".notdef", ".notdef", ".notdef", ".notdef", ".notdef", ".notdef", ".notdef", ".notdef", // 000
	".notdef", ".notdef", ".notdef", ".notdef", ".notdef", ".notdef", ".notdef", ".notdef", // 010
	".notdef", ".notdef", ".notdef", ".notdef", ".notdef", ".notdef", ".notdef", ".notdef", // 020
	".notdef", ".notdef", ".notdef", ".notdef", ".notdef", ".notdef", ".notdef", ".notdef", // 030
	"space", "exclam", "quotedbl", "numbersign", "dollar", "percent", "ampersand", "quotesingle", // 040
	"parenleft", "parenright", "asterisk", "plus", "comma", "hyphen", "period", "slash", // 050
	"zero", "one", "two", "three", "four", "five", "six", "seven", // 060
	"eight", "nine", "colon", "semicolon", "less", "equal", "greater", "question", // 070
	"at", "A", "B", "C", "D", "E", "F", "G", // 100
	"H", "I", "J", "K", "L", "M", "N", "O", // 110
	"P", "Q", "R", "S", "T", "U", "V", "W", // 120
	"X", "Y", "Z", "bracketleft", "backslash", "bracketright", "asciicircum", "underscore", // 130
	"grave", "a", "b", "c", "d", "e", "f", "g", // 140
	"h", "i", "j", "k", "l", "m", "n", "o", // 150
	"p", "q", "r", "s", "t", "u", "v", "w", // 160
	"x", "y", "z", "braceleft", "bar", "braceright", "asciitilde", ".notdef", // 170
	"Adieresis", "Aring", "Ccedilla", "Eacute", "Ntilde", "Odieresis", "Udieresis", "aacute", // 200
	"agrave", "acircumflex", "adieresis", "atilde", "aring", "ccedilla", "eacute", "egrave", // 210
	"ecircumflex", "edieresis", "iacute", "igrave", "icircumflex", "idieresis", "ntilde", "oacute", // 220
	"ograve", "ocircumflex", "odieresis", "otilde", "uacute", "ugrave", "ucircumflex", "udieresis", // 230
	"dagger", "degree", "cent", "sterling", "section", "bullet", "paragraph", "germandbls", // 240
	"registered", "copyright", "trademark", "acute", "dieresis", ".notdef", "AE", "Oslash", // 250
	".notdef", "plusminus", ".notdef", ".notdef", "yen", "mu", ".notdef", ".notdef", // 260
	".notdef", ".notdef", ".notdef", "ordfeminine", "ordmasculine", ".notdef", "ae", "oslash", // 270
	"questiondown", "exclamdown", "logicalnot", ".notdef", "florin", ".notdef", ".notdef", "guillemotleft", // 300
	"guillemotright", "ellipsis", "space", "Agrave", "Atilde", "Otilde", "OE", "oe", // 310
	"endash", "emdash", "quotedblleft", "quotedblright", "quoteleft", "quoteright", "divide", ".notdef", // 320
	"ydieresis", "Ydieresis", "fraction", "currency", "guilsinglleft", "guilsinglright", "fi", "fl", // 330
	"daggerdbl", "periodcentered", "quotesinglbase", "quotedblbase", "perthousand", "Acircumflex", "Ecircumflex", "Aacute", // 340
	"Edieresis", "Egrave", "Iacute", "Icircumflex", "Idieresis", "Igrave", "Oacute", "Ocircumflex", // 350
	".notdef", "Ograve", "Uacute", "Ucircumflex", "Ugrave", "dotlessi", "circumflex", "tilde", // 360
	"macron", "breve", "dotaccent", "ring", "cedilla", "hungarumlaut", "ogonek", "caron", // 370
}
