package chem

// CPK colors as 0xRRGGBB.
var cpkColors = map[string]uint32{
	"H": 0xffffff, "He": 0xd9ffff, "Li": 0xcc80ff, "Be": 0xc2ff00, "B": 0xffb5b5, "C": 0x909090,
	"N": 0x3050f8, "O": 0xff0d0d, "F": 0x90e050, "Ne": 0xb3e3f5, "Na": 0xab5cf2, "Mg": 0x8aff00,
	"Al": 0xbfa6a6, "Si": 0xf0c8a0, "P": 0xff8000, "S": 0xffff30, "Cl": 0x1ff01f, "Ar": 0x80d1e3,
	"K": 0x8f40d4, "Ca": 0x3dff00, "Sc": 0xe6e6e6, "Ti": 0xbfc2c7, "V": 0xa6a6ab, "Cr": 0x8a99c7,
	"Mn": 0x9c7ac7, "Fe": 0xe06633, "Co": 0xf090a0, "Ni": 0x50d050, "Cu": 0xc88033, "Zn": 0x7d80b0,
	"Ga": 0xc28f8f, "Ge": 0x668f8f, "As": 0xbd80e3, "Se": 0xffa100, "Br": 0xa62929, "Kr": 0x5cb8d1,
	"Rb": 0x702eb0, "Sr": 0x00ff00, "Y": 0x94ffff, "Zr": 0x94e0e0, "Nb": 0x73c2c9, "Mo": 0x54b5b5,
	"Tc": 0x3b9e9e, "Ru": 0x248f8f, "Rh": 0x0a7d8c, "Pd": 0x006985, "Ag": 0xc0c0c0, "Cd": 0xffd98f,
	"In": 0xa67573, "Sn": 0x668080, "Sb": 0x9e63b5, "Te": 0xd47a00, "I": 0x940094, "Xe": 0x429eb0,
	"Cs": 0x57178f, "Ba": 0x00c900, "La": 0x70d4ff, "Ce": 0xffffc7, "Pr": 0xd9ffc7, "Nd": 0xc7ffc7,
	"Pm": 0xa3ffc7, "Sm": 0x8fffc7, "Eu": 0x61ffc7, "Gd": 0x45ffc7, "Tb": 0x30ffc7, "Dy": 0x1fffc7,
	"Ho": 0x00ff9c, "Er": 0x00e675, "Tm": 0x00d452, "Yb": 0x00bf38, "Lu": 0x00ab24, "Hf": 0x4dc2ff,
	"Ta": 0x4da6ff, "W": 0x2194d6, "Re": 0x267dab, "Os": 0x266696, "Ir": 0x175487, "Pt": 0xd0d0e0,
	"Au": 0xffd123, "Hg": 0xb8b8d0, "Tl": 0xa6544d, "Pb": 0x575961, "Bi": 0x9e4fb5, "Po": 0xab5c00,
	"At": 0x754f45, "Rn": 0x428296, "Fr": 0x420066, "Ra": 0x007d00, "Ac": 0x70abfa, "Th": 0x00baff,
	"Pa": 0x00a1ff, "U": 0x008fff, "Np": 0x0080ff, "Pu": 0x006bff, "Am": 0x545cf2, "Cm": 0x785ce3,
	"Bk": 0x8a4fe3, "Cf": 0xa136d4, "Es": 0xb31fd4, "Fm": 0xb31fba, "Md": 0xb30da6, "No": 0xbd0d87,
	"Lr": 0xc70066,
}

// Covalent radii in angstrom.
var covalentRadii = map[string]float64{
	"H": 0.31, "He": 0.28, "Li": 1.28, "Be": 0.96, "B": 0.84, "C": 0.76,
	"N": 0.71, "O": 0.66, "F": 0.57, "Ne": 0.58, "Na": 1.66, "Mg": 1.41,
	"Al": 1.21, "Si": 1.11, "P": 1.07, "S": 1.05, "Cl": 1.02, "Ar": 1.06,
	"K": 2.03, "Ca": 1.76, "Sc": 1.70, "Ti": 1.60, "V": 1.53, "Cr": 1.39,
	"Mn": 1.39, "Fe": 1.32, "Co": 1.26, "Ni": 1.24, "Cu": 1.32, "Zn": 1.22,
	"Ga": 1.22, "Ge": 1.20, "As": 1.19, "Se": 1.20, "Br": 1.20, "Kr": 1.16,
	"Rb": 2.20, "Sr": 1.95, "Y": 1.90, "Zr": 1.75, "Nb": 1.64, "Mo": 1.54,
	"Tc": 1.47, "Ru": 1.46, "Rh": 1.42, "Pd": 1.39, "Ag": 1.45, "Cd": 1.44,
	"In": 1.42, "Sn": 1.39, "Sb": 1.39, "Te": 1.38, "I": 1.39, "Xe": 1.40,
	"Cs": 2.44, "Ba": 2.15, "La": 2.07, "Ce": 2.04, "Pr": 2.03, "Nd": 2.01,
	"Pm": 1.99, "Sm": 1.98, "Eu": 1.98, "Gd": 1.96, "Tb": 1.94, "Dy": 1.92,
	"Ho": 1.92, "Er": 1.89, "Tm": 1.90, "Yb": 1.87, "Lu": 1.87, "Hf": 1.75,
	"Ta": 1.70, "W": 1.62, "Re": 1.51, "Os": 1.44, "Ir": 1.41, "Pt": 1.36,
	"Au": 1.36, "Hg": 1.32, "Tl": 1.45, "Pb": 1.46, "Bi": 1.48, "Po": 1.40,
	"At": 1.50, "Rn": 1.50, "Fr": 2.60, "Ra": 2.21, "Ac": 2.15, "Th": 2.06,
	"Pa": 2.00, "U": 1.96, "Np": 1.90, "Pu": 1.87, "Am": 1.80, "Cm": 1.69,
	"Bk": 1.60, "Cf": 1.60, "Es": 1.60, "Fm": 1.60, "Md": 1.60, "No": 1.60,
	"Lr": 1.60,
}

// Van der Waals radii in angstrom.
var vdwRadii = map[string]float64{
	"H": 1.2, "He": 1.4, "Li": 1.82, "Be": 1.53, "B": 1.92, "C": 1.7,
	"N": 1.55, "O": 1.52, "F": 1.47, "Ne": 1.54, "Na": 2.27, "Mg": 1.73,
	"Al": 1.84, "Si": 2.1, "P": 1.8, "S": 1.8, "Cl": 1.75, "Ar": 1.88,
	"K": 2.75, "Ca": 2.31, "Sc": 2.11, "Ti": 2.0, "V": 2.0, "Cr": 2.0,
	"Mn": 2.0, "Fe": 2.0, "Co": 2.0, "Ni": 1.63, "Cu": 1.4, "Zn": 1.39,
	"Ga": 1.87, "Ge": 2.11, "As": 1.85, "Se": 1.9, "Br": 1.85, "Kr": 2.02,
	"Rb": 3.03, "Sr": 2.49, "Y": 2.32, "Zr": 2.23, "Nb": 2.18, "Mo": 2.17,
	"Tc": 2.16, "Ru": 2.13, "Rh": 2.10, "Pd": 2.10, "Ag": 1.72, "Cd": 1.58,
	"In": 1.93, "Sn": 2.17, "Sb": 2.06, "Te": 2.06, "I": 1.98, "Xe": 2.16,
	"Cs": 3.43, "Ba": 2.68, "La": 2.50, "Ce": 2.48, "Pr": 2.47, "Nd": 2.45,
	"Pm": 2.43, "Sm": 2.42, "Eu": 2.40, "Gd": 2.38, "Tb": 2.37, "Dy": 2.35,
	"Ho": 2.33, "Er": 2.32, "Tm": 2.30, "Yb": 2.28, "Lu": 2.27, "Hf": 2.25,
	"Ta": 2.20, "W": 2.10, "Re": 2.05, "Os": 2.00, "Ir": 2.00, "Pt": 2.00,
	"Au": 2.00, "Hg": 1.55, "Tl": 1.96, "Pb": 2.02, "Bi": 2.07, "Po": 1.97,
	"At": 2.02, "Rn": 2.20, "Fr": 3.48, "Ra": 2.83, "Ac": 2.47, "Th": 2.45,
	"Pa": 2.43, "U": 2.41, "Np": 2.39, "Pu": 2.43, "Am": 2.44, "Cm": 2.45,
	"Bk": 2.45, "Cf": 2.45, "Es": 2.45, "Fm": 2.45, "Md": 2.45, "No": 2.45,
	"Lr": 2.45,
}
