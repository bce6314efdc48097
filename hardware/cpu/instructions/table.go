// This file is part of Gopher8088.
//
// Gopher8088 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8088 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8088.  If not, see <https://www.gnu.org/licenses/>.

package instructions

// Definitions is the table of every opcode. The index into the table is the
// opcode.
var Definitions = [256]Definition{
	{OpCode: 0x00, Operator: "ADD", Operands: "Eb,Gb", ModRM: true, Cycles: 3},
	{OpCode: 0x01, Operator: "ADD", Operands: "Ew,Gw", ModRM: true, Cycles: 3},
	{OpCode: 0x02, Operator: "ADD", Operands: "Gb,Eb", ModRM: true, Cycles: 3},
	{OpCode: 0x03, Operator: "ADD", Operands: "Gw,Ew", ModRM: true, Cycles: 3},
	{OpCode: 0x04, Operator: "ADD", Operands: "AL,Ib", Cycles: 4},
	{OpCode: 0x05, Operator: "ADD", Operands: "AX,Iw", Cycles: 4},
	{OpCode: 0x06, Operator: "PUSH", Operands: "ES", Cycles: 14},
	{OpCode: 0x07, Operator: "POP", Operands: "ES", Cycles: 12},
	{OpCode: 0x08, Operator: "OR", Operands: "Eb,Gb", ModRM: true, Cycles: 3},
	{OpCode: 0x09, Operator: "OR", Operands: "Ew,Gw", ModRM: true, Cycles: 3},
	{OpCode: 0x0a, Operator: "OR", Operands: "Gb,Eb", ModRM: true, Cycles: 3},
	{OpCode: 0x0b, Operator: "OR", Operands: "Gw,Ew", ModRM: true, Cycles: 3},
	{OpCode: 0x0c, Operator: "OR", Operands: "AL,Ib", Cycles: 4},
	{OpCode: 0x0d, Operator: "OR", Operands: "AX,Iw", Cycles: 4},
	{OpCode: 0x0e, Operator: "PUSH", Operands: "CS", Cycles: 14},
	{OpCode: 0x0f, Operator: "POP", Operands: "CS", Undocumented: true, Cycles: 12},
	{OpCode: 0x10, Operator: "ADC", Operands: "Eb,Gb", ModRM: true, Cycles: 3},
	{OpCode: 0x11, Operator: "ADC", Operands: "Ew,Gw", ModRM: true, Cycles: 3},
	{OpCode: 0x12, Operator: "ADC", Operands: "Gb,Eb", ModRM: true, Cycles: 3},
	{OpCode: 0x13, Operator: "ADC", Operands: "Gw,Ew", ModRM: true, Cycles: 3},
	{OpCode: 0x14, Operator: "ADC", Operands: "AL,Ib", Cycles: 4},
	{OpCode: 0x15, Operator: "ADC", Operands: "AX,Iw", Cycles: 4},
	{OpCode: 0x16, Operator: "PUSH", Operands: "SS", Cycles: 14},
	{OpCode: 0x17, Operator: "POP", Operands: "SS", Cycles: 12},
	{OpCode: 0x18, Operator: "SBB", Operands: "Eb,Gb", ModRM: true, Cycles: 3},
	{OpCode: 0x19, Operator: "SBB", Operands: "Ew,Gw", ModRM: true, Cycles: 3},
	{OpCode: 0x1a, Operator: "SBB", Operands: "Gb,Eb", ModRM: true, Cycles: 3},
	{OpCode: 0x1b, Operator: "SBB", Operands: "Gw,Ew", ModRM: true, Cycles: 3},
	{OpCode: 0x1c, Operator: "SBB", Operands: "AL,Ib", Cycles: 4},
	{OpCode: 0x1d, Operator: "SBB", Operands: "AX,Iw", Cycles: 4},
	{OpCode: 0x1e, Operator: "PUSH", Operands: "DS", Cycles: 14},
	{OpCode: 0x1f, Operator: "POP", Operands: "DS", Cycles: 12},
	{OpCode: 0x20, Operator: "AND", Operands: "Eb,Gb", ModRM: true, Cycles: 3},
	{OpCode: 0x21, Operator: "AND", Operands: "Ew,Gw", ModRM: true, Cycles: 3},
	{OpCode: 0x22, Operator: "AND", Operands: "Gb,Eb", ModRM: true, Cycles: 3},
	{OpCode: 0x23, Operator: "AND", Operands: "Gw,Ew", ModRM: true, Cycles: 3},
	{OpCode: 0x24, Operator: "AND", Operands: "AL,Ib", Cycles: 4},
	{OpCode: 0x25, Operator: "AND", Operands: "AX,Iw", Cycles: 4},
	{OpCode: 0x26, Operator: "ES:", Prefix: true, Cycles: 2},
	{OpCode: 0x27, Operator: "DAA", Cycles: 4},
	{OpCode: 0x28, Operator: "SUB", Operands: "Eb,Gb", ModRM: true, Cycles: 3},
	{OpCode: 0x29, Operator: "SUB", Operands: "Ew,Gw", ModRM: true, Cycles: 3},
	{OpCode: 0x2a, Operator: "SUB", Operands: "Gb,Eb", ModRM: true, Cycles: 3},
	{OpCode: 0x2b, Operator: "SUB", Operands: "Gw,Ew", ModRM: true, Cycles: 3},
	{OpCode: 0x2c, Operator: "SUB", Operands: "AL,Ib", Cycles: 4},
	{OpCode: 0x2d, Operator: "SUB", Operands: "AX,Iw", Cycles: 4},
	{OpCode: 0x2e, Operator: "CS:", Prefix: true, Cycles: 2},
	{OpCode: 0x2f, Operator: "DAS", Cycles: 4},
	{OpCode: 0x30, Operator: "XOR", Operands: "Eb,Gb", ModRM: true, Cycles: 3},
	{OpCode: 0x31, Operator: "XOR", Operands: "Ew,Gw", ModRM: true, Cycles: 3},
	{OpCode: 0x32, Operator: "XOR", Operands: "Gb,Eb", ModRM: true, Cycles: 3},
	{OpCode: 0x33, Operator: "XOR", Operands: "Gw,Ew", ModRM: true, Cycles: 3},
	{OpCode: 0x34, Operator: "XOR", Operands: "AL,Ib", Cycles: 4},
	{OpCode: 0x35, Operator: "XOR", Operands: "AX,Iw", Cycles: 4},
	{OpCode: 0x36, Operator: "SS:", Prefix: true, Cycles: 2},
	{OpCode: 0x37, Operator: "AAA", Cycles: 8},
	{OpCode: 0x38, Operator: "CMP", Operands: "Eb,Gb", ModRM: true, Cycles: 3},
	{OpCode: 0x39, Operator: "CMP", Operands: "Ew,Gw", ModRM: true, Cycles: 3},
	{OpCode: 0x3a, Operator: "CMP", Operands: "Gb,Eb", ModRM: true, Cycles: 3},
	{OpCode: 0x3b, Operator: "CMP", Operands: "Gw,Ew", ModRM: true, Cycles: 3},
	{OpCode: 0x3c, Operator: "CMP", Operands: "AL,Ib", Cycles: 4},
	{OpCode: 0x3d, Operator: "CMP", Operands: "AX,Iw", Cycles: 4},
	{OpCode: 0x3e, Operator: "DS:", Prefix: true, Cycles: 2},
	{OpCode: 0x3f, Operator: "AAS", Cycles: 8},
	{OpCode: 0x40, Operator: "INC", Operands: "AX", Cycles: 2},
	{OpCode: 0x41, Operator: "INC", Operands: "CX", Cycles: 2},
	{OpCode: 0x42, Operator: "INC", Operands: "DX", Cycles: 2},
	{OpCode: 0x43, Operator: "INC", Operands: "BX", Cycles: 2},
	{OpCode: 0x44, Operator: "INC", Operands: "SP", Cycles: 2},
	{OpCode: 0x45, Operator: "INC", Operands: "BP", Cycles: 2},
	{OpCode: 0x46, Operator: "INC", Operands: "SI", Cycles: 2},
	{OpCode: 0x47, Operator: "INC", Operands: "DI", Cycles: 2},
	{OpCode: 0x48, Operator: "DEC", Operands: "AX", Cycles: 2},
	{OpCode: 0x49, Operator: "DEC", Operands: "CX", Cycles: 2},
	{OpCode: 0x4a, Operator: "DEC", Operands: "DX", Cycles: 2},
	{OpCode: 0x4b, Operator: "DEC", Operands: "BX", Cycles: 2},
	{OpCode: 0x4c, Operator: "DEC", Operands: "SP", Cycles: 2},
	{OpCode: 0x4d, Operator: "DEC", Operands: "BP", Cycles: 2},
	{OpCode: 0x4e, Operator: "DEC", Operands: "SI", Cycles: 2},
	{OpCode: 0x4f, Operator: "DEC", Operands: "DI", Cycles: 2},
	{OpCode: 0x50, Operator: "PUSH", Operands: "AX", Cycles: 15},
	{OpCode: 0x51, Operator: "PUSH", Operands: "CX", Cycles: 15},
	{OpCode: 0x52, Operator: "PUSH", Operands: "DX", Cycles: 15},
	{OpCode: 0x53, Operator: "PUSH", Operands: "BX", Cycles: 15},
	{OpCode: 0x54, Operator: "PUSH", Operands: "SP", Cycles: 15},
	{OpCode: 0x55, Operator: "PUSH", Operands: "BP", Cycles: 15},
	{OpCode: 0x56, Operator: "PUSH", Operands: "SI", Cycles: 15},
	{OpCode: 0x57, Operator: "PUSH", Operands: "DI", Cycles: 15},
	{OpCode: 0x58, Operator: "POP", Operands: "AX", Cycles: 12},
	{OpCode: 0x59, Operator: "POP", Operands: "CX", Cycles: 12},
	{OpCode: 0x5a, Operator: "POP", Operands: "DX", Cycles: 12},
	{OpCode: 0x5b, Operator: "POP", Operands: "BX", Cycles: 12},
	{OpCode: 0x5c, Operator: "POP", Operands: "SP", Cycles: 12},
	{OpCode: 0x5d, Operator: "POP", Operands: "BP", Cycles: 12},
	{OpCode: 0x5e, Operator: "POP", Operands: "SI", Cycles: 12},
	{OpCode: 0x5f, Operator: "POP", Operands: "DI", Cycles: 12},
	{OpCode: 0x60, Operator: "JO", Operands: "Jb", Undocumented: true, Cycles: 4},
	{OpCode: 0x61, Operator: "JNO", Operands: "Jb", Undocumented: true, Cycles: 4},
	{OpCode: 0x62, Operator: "JB", Operands: "Jb", Undocumented: true, Cycles: 4},
	{OpCode: 0x63, Operator: "JNB", Operands: "Jb", Undocumented: true, Cycles: 4},
	{OpCode: 0x64, Operator: "JZ", Operands: "Jb", Undocumented: true, Cycles: 4},
	{OpCode: 0x65, Operator: "JNZ", Operands: "Jb", Undocumented: true, Cycles: 4},
	{OpCode: 0x66, Operator: "JBE", Operands: "Jb", Undocumented: true, Cycles: 4},
	{OpCode: 0x67, Operator: "JA", Operands: "Jb", Undocumented: true, Cycles: 4},
	{OpCode: 0x68, Operator: "JS", Operands: "Jb", Undocumented: true, Cycles: 4},
	{OpCode: 0x69, Operator: "JNS", Operands: "Jb", Undocumented: true, Cycles: 4},
	{OpCode: 0x6a, Operator: "JPE", Operands: "Jb", Undocumented: true, Cycles: 4},
	{OpCode: 0x6b, Operator: "JPO", Operands: "Jb", Undocumented: true, Cycles: 4},
	{OpCode: 0x6c, Operator: "JL", Operands: "Jb", Undocumented: true, Cycles: 4},
	{OpCode: 0x6d, Operator: "JGE", Operands: "Jb", Undocumented: true, Cycles: 4},
	{OpCode: 0x6e, Operator: "JLE", Operands: "Jb", Undocumented: true, Cycles: 4},
	{OpCode: 0x6f, Operator: "JG", Operands: "Jb", Undocumented: true, Cycles: 4},
	{OpCode: 0x70, Operator: "JO", Operands: "Jb", Cycles: 4},
	{OpCode: 0x71, Operator: "JNO", Operands: "Jb", Cycles: 4},
	{OpCode: 0x72, Operator: "JB", Operands: "Jb", Cycles: 4},
	{OpCode: 0x73, Operator: "JNB", Operands: "Jb", Cycles: 4},
	{OpCode: 0x74, Operator: "JZ", Operands: "Jb", Cycles: 4},
	{OpCode: 0x75, Operator: "JNZ", Operands: "Jb", Cycles: 4},
	{OpCode: 0x76, Operator: "JBE", Operands: "Jb", Cycles: 4},
	{OpCode: 0x77, Operator: "JA", Operands: "Jb", Cycles: 4},
	{OpCode: 0x78, Operator: "JS", Operands: "Jb", Cycles: 4},
	{OpCode: 0x79, Operator: "JNS", Operands: "Jb", Cycles: 4},
	{OpCode: 0x7a, Operator: "JPE", Operands: "Jb", Cycles: 4},
	{OpCode: 0x7b, Operator: "JPO", Operands: "Jb", Cycles: 4},
	{OpCode: 0x7c, Operator: "JL", Operands: "Jb", Cycles: 4},
	{OpCode: 0x7d, Operator: "JGE", Operands: "Jb", Cycles: 4},
	{OpCode: 0x7e, Operator: "JLE", Operands: "Jb", Cycles: 4},
	{OpCode: 0x7f, Operator: "JG", Operands: "Jb", Cycles: 4},
	{OpCode: 0x80, Operands: "Eb,Ib", ModRM: true, Group: Group1, Cycles: 4},
	{OpCode: 0x81, Operands: "Ew,Iw", ModRM: true, Group: Group1, Cycles: 4},
	{OpCode: 0x82, Operands: "Eb,Ib", ModRM: true, Undocumented: true, Group: Group1, Cycles: 4},
	{OpCode: 0x83, Operands: "Ew,Is", ModRM: true, Group: Group1, Cycles: 4},
	{OpCode: 0x84, Operator: "TEST", Operands: "Eb,Gb", ModRM: true, Cycles: 3},
	{OpCode: 0x85, Operator: "TEST", Operands: "Ew,Gw", ModRM: true, Cycles: 3},
	{OpCode: 0x86, Operator: "XCHG", Operands: "Gb,Eb", ModRM: true, Cycles: 4},
	{OpCode: 0x87, Operator: "XCHG", Operands: "Gw,Ew", ModRM: true, Cycles: 4},
	{OpCode: 0x88, Operator: "MOV", Operands: "Eb,Gb", ModRM: true, Cycles: 2},
	{OpCode: 0x89, Operator: "MOV", Operands: "Ew,Gw", ModRM: true, Cycles: 2},
	{OpCode: 0x8a, Operator: "MOV", Operands: "Gb,Eb", ModRM: true, Cycles: 2},
	{OpCode: 0x8b, Operator: "MOV", Operands: "Gw,Ew", ModRM: true, Cycles: 2},
	{OpCode: 0x8c, Operator: "MOV", Operands: "Ew,Sw", ModRM: true, Cycles: 2},
	{OpCode: 0x8d, Operator: "LEA", Operands: "Gw,M", ModRM: true, Cycles: 2},
	{OpCode: 0x8e, Operator: "MOV", Operands: "Sw,Ew", ModRM: true, Cycles: 2},
	{OpCode: 0x8f, Operator: "POP", Operands: "Ew", ModRM: true, Cycles: 12},
	{OpCode: 0x90, Operator: "NOP", Cycles: 3},
	{OpCode: 0x91, Operator: "XCHG", Operands: "AX,CX", Cycles: 3},
	{OpCode: 0x92, Operator: "XCHG", Operands: "AX,DX", Cycles: 3},
	{OpCode: 0x93, Operator: "XCHG", Operands: "AX,BX", Cycles: 3},
	{OpCode: 0x94, Operator: "XCHG", Operands: "AX,SP", Cycles: 3},
	{OpCode: 0x95, Operator: "XCHG", Operands: "AX,BP", Cycles: 3},
	{OpCode: 0x96, Operator: "XCHG", Operands: "AX,SI", Cycles: 3},
	{OpCode: 0x97, Operator: "XCHG", Operands: "AX,DI", Cycles: 3},
	{OpCode: 0x98, Operator: "CBW", Cycles: 2},
	{OpCode: 0x99, Operator: "CWD", Cycles: 5},
	{OpCode: 0x9a, Operator: "CALL", Operands: "Ap", Cycles: 36},
	{OpCode: 0x9b, Operator: "WAIT", Cycles: 3},
	{OpCode: 0x9c, Operator: "PUSHF", Cycles: 14},
	{OpCode: 0x9d, Operator: "POPF", Cycles: 12},
	{OpCode: 0x9e, Operator: "SAHF", Cycles: 4},
	{OpCode: 0x9f, Operator: "LAHF", Cycles: 4},
	{OpCode: 0xa0, Operator: "MOV", Operands: "AL,Ob", Cycles: 10},
	{OpCode: 0xa1, Operator: "MOV", Operands: "AX,Ow", Cycles: 10},
	{OpCode: 0xa2, Operator: "MOV", Operands: "Ob,AL", Cycles: 10},
	{OpCode: 0xa3, Operator: "MOV", Operands: "Ow,AX", Cycles: 10},
	{OpCode: 0xa4, Operator: "MOVSB", Cycles: 18},
	{OpCode: 0xa5, Operator: "MOVSW", Cycles: 18},
	{OpCode: 0xa6, Operator: "CMPSB", Cycles: 22},
	{OpCode: 0xa7, Operator: "CMPSW", Cycles: 22},
	{OpCode: 0xa8, Operator: "TEST", Operands: "AL,Ib", Cycles: 4},
	{OpCode: 0xa9, Operator: "TEST", Operands: "AX,Iw", Cycles: 4},
	{OpCode: 0xaa, Operator: "STOSB", Cycles: 11},
	{OpCode: 0xab, Operator: "STOSW", Cycles: 11},
	{OpCode: 0xac, Operator: "LODSB", Cycles: 12},
	{OpCode: 0xad, Operator: "LODSW", Cycles: 12},
	{OpCode: 0xae, Operator: "SCASB", Cycles: 15},
	{OpCode: 0xaf, Operator: "SCASW", Cycles: 15},
	{OpCode: 0xb0, Operator: "MOV", Operands: "AL,Ib", Cycles: 4},
	{OpCode: 0xb1, Operator: "MOV", Operands: "CL,Ib", Cycles: 4},
	{OpCode: 0xb2, Operator: "MOV", Operands: "DL,Ib", Cycles: 4},
	{OpCode: 0xb3, Operator: "MOV", Operands: "BL,Ib", Cycles: 4},
	{OpCode: 0xb4, Operator: "MOV", Operands: "AH,Ib", Cycles: 4},
	{OpCode: 0xb5, Operator: "MOV", Operands: "CH,Ib", Cycles: 4},
	{OpCode: 0xb6, Operator: "MOV", Operands: "DH,Ib", Cycles: 4},
	{OpCode: 0xb7, Operator: "MOV", Operands: "BH,Ib", Cycles: 4},
	{OpCode: 0xb8, Operator: "MOV", Operands: "AX,Iw", Cycles: 4},
	{OpCode: 0xb9, Operator: "MOV", Operands: "CX,Iw", Cycles: 4},
	{OpCode: 0xba, Operator: "MOV", Operands: "DX,Iw", Cycles: 4},
	{OpCode: 0xbb, Operator: "MOV", Operands: "BX,Iw", Cycles: 4},
	{OpCode: 0xbc, Operator: "MOV", Operands: "SP,Iw", Cycles: 4},
	{OpCode: 0xbd, Operator: "MOV", Operands: "BP,Iw", Cycles: 4},
	{OpCode: 0xbe, Operator: "MOV", Operands: "SI,Iw", Cycles: 4},
	{OpCode: 0xbf, Operator: "MOV", Operands: "DI,Iw", Cycles: 4},
	{OpCode: 0xc0, Operator: "RET", Operands: "Iw", Undocumented: true, Cycles: 20},
	{OpCode: 0xc1, Operator: "RET", Undocumented: true, Cycles: 16},
	{OpCode: 0xc2, Operator: "RET", Operands: "Iw", Cycles: 20},
	{OpCode: 0xc3, Operator: "RET", Cycles: 16},
	{OpCode: 0xc4, Operator: "LES", Operands: "Gw,Mp", ModRM: true, Cycles: 16},
	{OpCode: 0xc5, Operator: "LDS", Operands: "Gw,Mp", ModRM: true, Cycles: 16},
	{OpCode: 0xc6, Operator: "MOV", Operands: "Eb,Ib", ModRM: true, Cycles: 4},
	{OpCode: 0xc7, Operator: "MOV", Operands: "Ew,Iw", ModRM: true, Cycles: 4},
	{OpCode: 0xc8, Operator: "RETF", Operands: "Iw", Undocumented: true, Cycles: 25},
	{OpCode: 0xc9, Operator: "RETF", Undocumented: true, Cycles: 26},
	{OpCode: 0xca, Operator: "RETF", Operands: "Iw", Cycles: 25},
	{OpCode: 0xcb, Operator: "RETF", Cycles: 26},
	{OpCode: 0xcc, Operator: "INT", Operands: "3", Cycles: 52},
	{OpCode: 0xcd, Operator: "INT", Operands: "Ib", Cycles: 51},
	{OpCode: 0xce, Operator: "INTO", Cycles: 4},
	{OpCode: 0xcf, Operator: "IRET", Cycles: 24},
	{OpCode: 0xd0, Operands: "Eb,1", ModRM: true, Group: Group2, Cycles: 2},
	{OpCode: 0xd1, Operands: "Ew,1", ModRM: true, Group: Group2, Cycles: 2},
	{OpCode: 0xd2, Operands: "Eb,CL", ModRM: true, Group: Group2, Cycles: 8},
	{OpCode: 0xd3, Operands: "Ew,CL", ModRM: true, Group: Group2, Cycles: 8},
	{OpCode: 0xd4, Operator: "AAM", Operands: "Ib", Cycles: 83},
	{OpCode: 0xd5, Operator: "AAD", Operands: "Ib", Cycles: 60},
	{OpCode: 0xd6, Operator: "SALC", Undocumented: true, Cycles: 4},
	{OpCode: 0xd7, Operator: "XLAT", Cycles: 11},
	{OpCode: 0xd8, Operator: "ESC", Operands: "Ew", ModRM: true, Cycles: 2},
	{OpCode: 0xd9, Operator: "ESC", Operands: "Ew", ModRM: true, Cycles: 2},
	{OpCode: 0xda, Operator: "ESC", Operands: "Ew", ModRM: true, Cycles: 2},
	{OpCode: 0xdb, Operator: "ESC", Operands: "Ew", ModRM: true, Cycles: 2},
	{OpCode: 0xdc, Operator: "ESC", Operands: "Ew", ModRM: true, Cycles: 2},
	{OpCode: 0xdd, Operator: "ESC", Operands: "Ew", ModRM: true, Cycles: 2},
	{OpCode: 0xde, Operator: "ESC", Operands: "Ew", ModRM: true, Cycles: 2},
	{OpCode: 0xdf, Operator: "ESC", Operands: "Ew", ModRM: true, Cycles: 2},
	{OpCode: 0xe0, Operator: "LOOPNZ", Operands: "Jb", Cycles: 5},
	{OpCode: 0xe1, Operator: "LOOPZ", Operands: "Jb", Cycles: 6},
	{OpCode: 0xe2, Operator: "LOOP", Operands: "Jb", Cycles: 5},
	{OpCode: 0xe3, Operator: "JCXZ", Operands: "Jb", Cycles: 6},
	{OpCode: 0xe4, Operator: "IN", Operands: "AL,Ib", Cycles: 10},
	{OpCode: 0xe5, Operator: "IN", Operands: "AX,Ib", Cycles: 10},
	{OpCode: 0xe6, Operator: "OUT", Operands: "Ib,AL", Cycles: 10},
	{OpCode: 0xe7, Operator: "OUT", Operands: "Ib,AX", Cycles: 10},
	{OpCode: 0xe8, Operator: "CALL", Operands: "Jw", Cycles: 19},
	{OpCode: 0xe9, Operator: "JMP", Operands: "Jw", Cycles: 15},
	{OpCode: 0xea, Operator: "JMP", Operands: "Ap", Cycles: 15},
	{OpCode: 0xeb, Operator: "JMP", Operands: "Jb", Cycles: 15},
	{OpCode: 0xec, Operator: "IN", Operands: "AL,DX", Cycles: 8},
	{OpCode: 0xed, Operator: "IN", Operands: "AX,DX", Cycles: 8},
	{OpCode: 0xee, Operator: "OUT", Operands: "DX,AL", Cycles: 8},
	{OpCode: 0xef, Operator: "OUT", Operands: "DX,AX", Cycles: 8},
	{OpCode: 0xf0, Operator: "LOCK", Prefix: true, Cycles: 2},
	{OpCode: 0xf1, Operator: "LOCK", Prefix: true, Undocumented: true, Cycles: 2},
	{OpCode: 0xf2, Operator: "REPNZ", Prefix: true, Cycles: 2},
	{OpCode: 0xf3, Operator: "REPZ", Prefix: true, Cycles: 2},
	{OpCode: 0xf4, Operator: "HLT", Cycles: 2},
	{OpCode: 0xf5, Operator: "CMC", Cycles: 2},
	{OpCode: 0xf6, Operands: "Eb", ModRM: true, Group: Group3, Cycles: 3},
	{OpCode: 0xf7, Operands: "Ew", ModRM: true, Group: Group3, Cycles: 3},
	{OpCode: 0xf8, Operator: "CLC", Cycles: 2},
	{OpCode: 0xf9, Operator: "STC", Cycles: 2},
	{OpCode: 0xfa, Operator: "CLI", Cycles: 2},
	{OpCode: 0xfb, Operator: "STI", Cycles: 2},
	{OpCode: 0xfc, Operator: "CLD", Cycles: 2},
	{OpCode: 0xfd, Operator: "STD", Cycles: 2},
	{OpCode: 0xfe, Operands: "Eb", ModRM: true, Group: Group4, Cycles: 3},
	{OpCode: 0xff, Operands: "Ew", ModRM: true, Group: Group5, Cycles: 3},
}
